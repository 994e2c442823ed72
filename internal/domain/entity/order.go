package entity

import "time"

// Order representa un pedido de cliente ya normalizado.
// Las fechas no parseables quedan en cero (time.Time{}) y se tratan como ausentes.
type Order struct {
	OrderID              string
	OrderDate            time.Time
	PromisedDeliveryDate time.Time
	ActualDeliveryDate   time.Time
	OrderQuantity        float64
	FulfilledQuantity    float64
	Status               string

	// DelayDays = entrega real - entrega prometida (días). Solo es válido si HasDelay.
	DelayDays int
	HasDelay  bool

	// Coordenadas opcionales; HasLocation indica que la tabla trae ambas columnas.
	Latitude    float64
	Longitude   float64
	HasLocation bool
}

// IsOnTime indica si el pedido llegó a tiempo (retraso <= 0). Sin retraso conocido devuelve false.
func (o Order) IsOnTime() bool {
	return o.HasDelay && o.DelayDays <= 0
}

// IsDelayed indica si el pedido llegó tarde (retraso > 0).
func (o Order) IsDelayed() bool {
	return o.HasDelay && o.DelayDays > 0
}

// FulfillmentRatio devuelve cantidad cumplida / cantidad pedida.
// Con cantidad pedida en cero el ratio no está definido y ok es false.
func (o Order) FulfillmentRatio() (ratio float64, ok bool) {
	if o.OrderQuantity == 0 {
		return 0, false
	}
	return o.FulfilledQuantity / o.OrderQuantity, true
}

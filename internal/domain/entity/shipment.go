package entity

// ShipmentStatusDelayed estado que marca un envío retrasado.
const ShipmentStatusDelayed = "Delayed"

// ShipmentRecord envío de transporte entre un origen y un destino.
type ShipmentRecord struct {
	CarrierName          string
	Status               string
	EstimatedTransitTime float64
	ActualTransitTime    float64
	OriginLocation       string
	DestinationLocation  string
	OriginLat            float64
	OriginLon            float64
	DestinationLat       float64
	DestinationLon       float64
	ModeOfTransport      string
}

// IsDelayed indica si el envío está marcado como retrasado.
func (s ShipmentRecord) IsDelayed() bool {
	return s.Status == ShipmentStatusDelayed
}

package entity

// Supplier métricas de desempeño de un proveedor.
type Supplier struct {
	Name               string
	OnTimeDeliveryRate float64 // %
	QualityRating      float64
	LeadTimeDays       float64
	DefectRate         float64 // %
}

package entity

// InventoryRecord stock de un producto en una bodega.
type InventoryRecord struct {
	ProductID       string
	WarehouseID     string
	StockQuantity   float64
	ReorderLevel    float64
	AvgDemandPerDay float64
}

// AboveReorder indica si el stock cubre el punto de reorden (stock >= reorden).
func (r InventoryRecord) AboveReorder() bool {
	return r.StockQuantity >= r.ReorderLevel
}

// NeedsReorder indica una alerta de reposición (stock <= reorden).
func (r InventoryRecord) NeedsReorder() bool {
	return r.StockQuantity <= r.ReorderLevel
}

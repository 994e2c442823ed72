package dto

import "github.com/shopspring/decimal"

// ── Pedidos ───────────────────────────────────────────────────────────────────

// DelayBucketDTO cantidad de pedidos con un retraso positivo dado.
type DelayBucketDTO struct {
	DelayDays int `json:"delay_days"`
	Count     int `json:"count"`
}

// GeoPointDTO pedido con ubicación y retraso conocido.
type GeoPointDTO struct {
	OrderID   string  `json:"order_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DelayDays int     `json:"delay_days"`
}

// OrdersViewDTO respuesta de GET /api/dashboard/orders.
type OrdersViewDTO struct {
	StatusCounts        []CountDTO       `json:"status_counts"`        // mayor a menor
	DeliveryPerformance []CountDTO       `json:"delivery_performance"` // On-Time, Delayed
	DelayDistribution   []DelayBucketDTO `json:"delay_distribution"`   // retraso ascendente
	MonthlyOrders       []CountDTO       `json:"monthly_orders"`       // YYYY-MM cronológico
	GeoPoints           []GeoPointDTO    `json:"geo_points,omitempty"` // solo si hay latitud/longitud
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierRowDTO fila completa de proveedor.
type SupplierRowDTO struct {
	SupplierName       string  `json:"supplier_name"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
	QualityRating      float64 `json:"quality_rating"`
	LeadTimeDays       float64 `json:"lead_time_days"`
	DefectRate         float64 `json:"defect_rate"`
}

// SupplierMetricDTO métrica escalar por proveedor.
type SupplierMetricDTO struct {
	SupplierName string  `json:"supplier_name"`
	Value        float64 `json:"value"`
}

// SuppliersViewDTO respuesta de GET /api/dashboard/suppliers.
type SuppliersViewDTO struct {
	Ranking         []SupplierRowDTO    `json:"ranking"`            // lead_time asc, defect_rate asc
	LeadTimes       []SupplierMetricDTO `json:"lead_times"`         // orden original
	QualityVsOnTime []SupplierRowDTO    `json:"quality_vs_on_time"` // puntos del scatter
	DefectRates     []SupplierMetricDTO `json:"defect_rates"`       // promedio por proveedor
}

// ── Inventario ────────────────────────────────────────────────────────────────

// ProductDemandDTO demanda promedio diaria de un producto.
type ProductDemandDTO struct {
	ProductID       string  `json:"product_id"`
	AvgDemandPerDay float64 `json:"avg_demand_per_day"`
}

// StockLevelDTO stock contra punto de reorden.
type StockLevelDTO struct {
	ProductID     string  `json:"product_id"`
	WarehouseID   string  `json:"warehouse_id"`
	StockQuantity float64 `json:"stock_quantity"`
	ReorderLevel  float64 `json:"reorder_level"`
}

// WarehouseStockDTO resumen de stock por bodega.
type WarehouseStockDTO struct {
	WarehouseID string  `json:"warehouse_id"`
	Products    int     `json:"products"`
	TotalStock  float64 `json:"total_stock"`
	MinStock    float64 `json:"min_stock"`
	MaxStock    float64 `json:"max_stock"`
}

// ForecastPointDTO demanda pronosticada vs real en una fecha.
type ForecastPointDTO struct {
	Date            string  `json:"date,omitempty"` // YYYY-MM-DD; vacío si la fecha no era válida
	PredictedDemand float64 `json:"predicted_demand"`
	ActualDemand    float64 `json:"actual_demand"`
}

// InventoryViewDTO respuesta de GET /api/dashboard/inventory.
type InventoryViewDTO struct {
	TotalStock          float64             `json:"total_stock"`
	ReorderAlerts       int                 `json:"reorder_alerts"`
	AvgForecastAccuracy *float64            `json:"avg_forecast_accuracy"`
	StockLevels         []StockLevelDTO     `json:"stock_levels"`
	Warehouses          []WarehouseStockDTO `json:"warehouses"`
	Forecast            []ForecastPointDTO  `json:"forecast"`
	TopFastMoving       []ProductDemandDTO  `json:"top_fast_moving"`
	TopSlowMoving       []ProductDemandDTO  `json:"top_slow_moving"`
}

// ── Transporte ────────────────────────────────────────────────────────────────

// CarrierPerformanceDTO tiempo de tránsito promedio por transportista.
type CarrierPerformanceDTO struct {
	CarrierName    string  `json:"carrier_name"`
	Shipments      int     `json:"shipments"`
	AvgTransitTime float64 `json:"avg_transit_time"`
}

// RoutePointDTO envío ubicado en el mapa de rutas.
type RoutePointDTO struct {
	OriginLocation      string  `json:"origin_location"`
	DestinationLocation string  `json:"destination_location"`
	OriginLat           float64 `json:"origin_lat"`
	OriginLon           float64 `json:"origin_lon"`
	DestinationLat      float64 `json:"destination_lat"`
	DestinationLon      float64 `json:"destination_lon"`
	ModeOfTransport     string  `json:"mode_of_transport"`
	Status              string  `json:"shipment_status"`
	ActualTransitTime   float64 `json:"actual_transit_time"`
}

// TransportationViewDTO respuesta de GET /api/dashboard/transportation.
type TransportationViewDTO struct {
	TotalShipments     int                     `json:"total_shipments"`
	DelayedPercentage  *float64                `json:"delayed_percentage"`
	AvgTransitTime     *float64                `json:"avg_transit_time"`
	BestCarrier        string                  `json:"best_carrier"`
	WorstCarrier       string                  `json:"worst_carrier"`
	Carriers           []CarrierPerformanceDTO `json:"carriers"`
	StatusDistribution []CountDTO              `json:"status_distribution"`
	Routes             []RoutePointDTO         `json:"routes"`
	Insights           []string                `json:"insights"`
}

// ── Costos ────────────────────────────────────────────────────────────────────

// CostTrendPointDTO costo registrado en una fecha.
type CostTrendPointDTO struct {
	Date     string          `json:"date,omitempty"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CostsViewDTO respuesta de GET /api/dashboard/costs.
type CostsViewDTO struct {
	Breakdown           []CostBreakdownDTO  `json:"breakdown"`
	Trend               []CostTrendPointDTO `json:"trend"`
	SupplierDefectRates []SupplierMetricDTO `json:"supplier_defect_rates"`
}

// SnapshotInfoDTO respuesta de GET /api/snapshot.
type SnapshotInfoDTO struct {
	SnapshotID string         `json:"snapshot_id"`
	LoadedAt   string         `json:"loaded_at"`
	Tables     []TableInfoDTO `json:"tables"`
}

// TableInfoDTO filas y celdas presentes/rellenadas de una tabla cargada.
type TableInfoDTO struct {
	Table        string          `json:"table"`
	Rows         int             `json:"rows"`
	FilledCells  int             `json:"filled_cells"`
	MissingDates int             `json:"missing_dates"`
	Columns      []ColumnInfoDTO `json:"columns"`
}

// ColumnInfoDTO conteo por columna tipada.
type ColumnInfoDTO struct {
	Column  string `json:"column"`
	Kind    string `json:"kind"`
	Present int    `json:"present"`
	Filled  int    `json:"filled"`
	Missing int    `json:"missing"`
}

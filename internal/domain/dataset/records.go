package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/entity"
)

// Orders convierte el frame de pedidos en entidades.
// DelayDays se recalcula siempre desde las fechas; el valor crudo de delay_days se ignora.
func Orders(f *Frame) []entity.Order {
	hasLocation := f.Has("latitude") && f.Has("longitude")
	out := make([]entity.Order, f.Len())
	for i := range out {
		o := entity.Order{
			OrderID:              f.Text("order_id", i),
			OrderDate:            f.Date("order_date", i),
			PromisedDeliveryDate: f.Date("promised_delivery_date", i),
			ActualDeliveryDate:   f.Date("actual_delivery_date", i),
			OrderQuantity:        f.Float("order_quantity", i),
			FulfilledQuantity:    f.Float("fulfilled_quantity", i),
			Status:               f.Text("order_status", i),
			HasLocation:          hasLocation,
		}
		if hasLocation {
			o.Latitude = f.Float("latitude", i)
			o.Longitude = f.Float("longitude", i)
		}
		if !o.ActualDeliveryDate.IsZero() && !o.PromisedDeliveryDate.IsZero() {
			o.DelayDays = floorDays(o.ActualDeliveryDate.Unix() - o.PromisedDeliveryDate.Unix())
			o.HasDelay = true
		}
		out[i] = o
	}
	return out
}

// floorDays días completos (piso) de una diferencia en segundos, igual que la parte
// .days de un timedelta. Se trabaja en segundos Unix porque time.Duration satura a ~292 años.
func floorDays(seconds int64) int {
	const day = 24 * 60 * 60
	days := seconds / day
	if seconds%day != 0 && seconds < 0 {
		days--
	}
	return int(days)
}

// Costs convierte el frame de costos en entidades (montos en decimal).
func Costs(f *Frame) []entity.CostEntry {
	out := make([]entity.CostEntry, f.Len())
	for i := range out {
		out[i] = entity.CostEntry{
			Category:     f.Text("category", i),
			Amount:       decimal.NewFromFloat(f.Float("cost_amount", i)),
			DateRecorded: f.Date("date_recorded", i),
		}
	}
	return out
}

// Suppliers convierte el frame de proveedores en entidades.
func Suppliers(f *Frame) []entity.Supplier {
	out := make([]entity.Supplier, f.Len())
	for i := range out {
		out[i] = entity.Supplier{
			Name:               f.Text("supplier_name", i),
			OnTimeDeliveryRate: f.Float("on_time_delivery_rate", i),
			QualityRating:      f.Float("quality_rating", i),
			LeadTimeDays:       f.Float("lead_time_days", i),
			DefectRate:         f.Float("defect_rate", i),
		}
	}
	return out
}

// Inventory convierte el frame de inventario en entidades.
func Inventory(f *Frame) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, f.Len())
	for i := range out {
		out[i] = entity.InventoryRecord{
			ProductID:       f.Text("product_id", i),
			WarehouseID:     f.Text("warehouse_id", i),
			StockQuantity:   f.Float("stock_quantity", i),
			ReorderLevel:    f.Float("reorder_level", i),
			AvgDemandPerDay: f.Float("avg_demand_per_day", i),
		}
	}
	return out
}

// Forecasts convierte el frame de pronósticos en entidades.
func Forecasts(f *Frame) []entity.ForecastRecord {
	out := make([]entity.ForecastRecord, f.Len())
	for i := range out {
		out[i] = entity.ForecastRecord{
			ForecastDate:     f.Date("forecast_date", i),
			PredictedDemand:  f.Float("predicted_demand", i),
			ActualDemand:     f.Float("actual_demand", i),
			ForecastAccuracy: f.Float("forecast_accuracy", i),
		}
	}
	return out
}

// Shipments convierte el frame de transporte en entidades.
func Shipments(f *Frame) []entity.ShipmentRecord {
	out := make([]entity.ShipmentRecord, f.Len())
	for i := range out {
		out[i] = entity.ShipmentRecord{
			CarrierName:          f.Text("carrier_name", i),
			Status:               f.Text("shipment_status", i),
			EstimatedTransitTime: f.Float("estimated_transit_time", i),
			ActualTransitTime:    f.Float("actual_transit_time", i),
			OriginLocation:       f.Text("origin_location", i),
			DestinationLocation:  f.Text("destination_location", i),
			OriginLat:            f.Float("origin_lat", i),
			OriginLon:            f.Float("origin_lon", i),
			DestinationLat:       f.Float("destination_lat", i),
			DestinationLon:       f.Float("destination_lon", i),
			ModeOfTransport:      f.Text("mode_of_transport", i),
		}
	}
	return out
}

package entity

import "time"

// ForecastRecord pronóstico de demanda contra demanda real.
type ForecastRecord struct {
	ForecastDate     time.Time
	PredictedDemand  float64
	ActualDemand     float64
	ForecastAccuracy float64
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEntry representa un costo registrado de la cadena de suministro.
type CostEntry struct {
	Category     string
	Amount       decimal.Decimal
	DateRecorded time.Time // cero si la fecha no se pudo interpretar
}

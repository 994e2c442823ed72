package dto

import "math"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Float convierte una métrica a puntero para JSON: NaN (indeterminado) se serializa como null.
func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// CountDTO par etiqueta/conteo usado por barras, tortas y series mensuales.
type CountDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

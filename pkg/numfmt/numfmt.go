// Package numfmt formatea cifras para el tablero: notación compacta (K/M)
// para magnitudes y valor completo con separador de miles para montos.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	million  = 1_000_000
	thousand = 1_000
)

var printer = message.NewPrinter(language.English)

// Compact formatea conteos y totales de costo:
//
//	>= 1.000.000 → "2.5M"
//	>= 1.000     → "1.5K"
//	resto        → "999.00"
func Compact(value float64) string {
	switch {
	case value >= million:
		return fmt.Sprintf("%.1fM", value/million)
	case value >= thousand:
		return fmt.Sprintf("%.1fK", value/thousand)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

// CompactDecimal aplica Compact a un monto decimal.
func CompactDecimal(value decimal.Decimal) string {
	return Compact(value.InexactFloat64())
}

// Currency valor completo con separador de miles y dos decimales, ej: "$1,234,567.89".
// Trabaja sobre el texto del decimal, así los centavos no se pierden en montos grandes.
func Currency(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(intPart) + "." + frac
}

// groupThousands agrupa los dígitos de un entero no negativo en texto.
// Dentro de int64 usa el printer de x/text; fuera de ese rango agrupa a mano.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Plain representación mínima de un valor ya redondeado: "4.25", "4.0", "n/a" si es NaN.
// Los enteros conservan ".0" para que "4.0 days" no se lea como un conteo.
func Plain(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "n/a"
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

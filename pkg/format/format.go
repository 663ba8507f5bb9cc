// Package format agrupa los formateadores de presentación: fechas cortas,
// moneda localizada y etiquetas legibles para el dashboard.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// Date formatea una fecha como DD/MM/YYYY. Devuelve "-" si la fecha es nula.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// Currency formatea un monto como moneda con separadores localizados, ej: "$ 1.234,56".
func Currency(v decimal.Decimal) string {
	return printer.Sprintf("$ %.2f", v.InexactFloat64())
}

// Number formatea un entero con separadores de miles localizados.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// DateLabel devuelve una etiqueta legible de la fecha, ej: "lunes, 31 de Agosto 2026".
func DateLabel(t time.Time) string {
	days := [...]string{
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	}
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s, %d de %s %d", days[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

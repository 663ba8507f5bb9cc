// Package stock implementa la clasificación pura de productos: estado de
// stock frente al mínimo y estado de vencimiento frente a la fecha actual.
// Todo se recalcula en cada llamada; no hay caché ni invalidación porque la
// corrección depende solo de los campos actuales del producto y de "ahora".
package stock

import (
	"math"
	"time"
)

// Umbrales de vencimiento en días.
const (
	CriticalDays = 7  // vencimiento crítico
	ExpiringDays = 30 // vencimiento próximo
)

// Status estado de stock de un producto.
type Status struct {
	IsLow bool // 0 < cantidad <= mínimo
	IsOut bool // cantidad == 0
}

// ExpiryStatus estado de vencimiento de un producto con fecha de validez.
//
// IsExpiring e IsCritical se solapan cuando DaysLeft está en [1,7]: no son
// una partición. Quien presenta resuelve en orden IsExpired, IsCritical,
// IsExpiring (ver Resolve).
type ExpiryStatus struct {
	IsExpiring bool // 0 < días restantes <= 30
	IsCritical bool // 0 < días restantes <= 7
	IsExpired  bool // días restantes <= 0
	DaysLeft   int
}

// Check clasifica la cantidad actual frente al stock mínimo.
func Check(quantity, minStock int) Status {
	return Status{
		IsLow: quantity <= minStock && quantity > 0,
		IsOut: quantity == 0,
	}
}

// CheckExpiry clasifica la fecha de vencimiento frente a now.
// Devuelve nil si el producto no tiene fecha de vencimiento.
// Los días restantes se redondean hacia arriba: un producto que vence mañana
// a cualquier hora cuenta como 1 día.
func CheckExpiry(expiryDate *time.Time, now time.Time) *ExpiryStatus {
	if expiryDate == nil || expiryDate.IsZero() {
		return nil
	}

	daysLeft := int(math.Ceil(expiryDate.Sub(now).Hours() / 24))

	return &ExpiryStatus{
		IsExpiring: daysLeft <= ExpiringDays && daysLeft > 0,
		IsCritical: daysLeft <= CriticalDays && daysLeft > 0,
		IsExpired:  daysLeft <= 0,
		DaysLeft:   daysLeft,
	}
}

// State estado combinado para presentación (badge de la tabla de productos).
type State int

const (
	StateOK State = iota
	StateOut
	StateLow
	StateExpired
	StateCritical
	StateExpiring
)

// String etiqueta legible del estado.
func (s State) String() string {
	switch s {
	case StateOut:
		return "Sin stock"
	case StateLow:
		return "Stock bajo"
	case StateExpired:
		return "Vencido"
	case StateCritical:
		return "Vencimiento crítico"
	case StateExpiring:
		return "Por vencer"
	default:
		return "Normal"
	}
}

// Resolve combina stock y vencimiento en un único estado de presentación.
// Prioridad: sin stock, stock bajo, vencido, crítico, próximo a vencer.
func Resolve(quantity, minStock int, expiryDate *time.Time, now time.Time) State {
	st := Check(quantity, minStock)
	exp := CheckExpiry(expiryDate, now)

	switch {
	case st.IsOut:
		return StateOut
	case st.IsLow:
		return StateLow
	case exp != nil && exp.IsExpired:
		return StateExpired
	case exp != nil && exp.IsCritical:
		return StateCritical
	case exp != nil && exp.IsExpiring:
		return StateExpiring
	default:
		return StateOK
	}
}

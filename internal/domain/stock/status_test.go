package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Check — clasificación de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCheck_CantidadCeroEsSinStock(t *testing.T) {
	for _, min := range []int{0, 1, 5, 100} {
		st := stock.Check(0, min)
		assert.True(t, st.IsOut, "cantidad 0 debe ser sin stock (mínimo %d)", min)
		assert.False(t, st.IsLow, "sin stock no debe marcar stock bajo (mínimo %d)", min)
	}
}

func TestCheck_CantidadDentroDelMinimoEsStockBajo(t *testing.T) {
	cases := []struct{ quantity, minStock int }{
		{1, 1},
		{1, 5},
		{5, 5},
		{3, 10},
	}
	for _, c := range cases {
		st := stock.Check(c.quantity, c.minStock)
		assert.True(t, st.IsLow, "cantidad %d con mínimo %d debe ser stock bajo", c.quantity, c.minStock)
		assert.False(t, st.IsOut)
	}
}

func TestCheck_CantidadSobreElMinimoEsNormal(t *testing.T) {
	cases := []struct{ quantity, minStock int }{
		{6, 5},
		{1, 0},
		{100, 10},
	}
	for _, c := range cases {
		st := stock.Check(c.quantity, c.minStock)
		assert.False(t, st.IsLow, "cantidad %d sobre mínimo %d no es stock bajo", c.quantity, c.minStock)
		assert.False(t, st.IsOut)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckExpiry — clasificación de vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func expiryIn(now time.Time, d time.Duration) *time.Time {
	e := now.Add(d)
	return &e
}

func TestCheckExpiry_SinFechaDevuelveNil(t *testing.T) {
	assert.Nil(t, stock.CheckExpiry(nil, time.Now()), "producto sin fecha de vencimiento no tiene estado")

	zero := time.Time{}
	assert.Nil(t, stock.CheckExpiry(&zero, time.Now()), "fecha cero cuenta como sin fecha")
}

func TestCheckExpiry_SieteDiasEsCriticoYProximo(t *testing.T) {
	now := time.Now()
	exp := stock.CheckExpiry(expiryIn(now, 7*24*time.Hour), now)

	require.NotNil(t, exp)
	assert.Equal(t, 7, exp.DaysLeft)
	assert.True(t, exp.IsCritical, "7 días debe ser crítico")
	assert.True(t, exp.IsExpiring, "7 días también cuenta como próximo a vencer (solapamiento preservado)")
	assert.False(t, exp.IsExpired)
}

func TestCheckExpiry_CeroONegativoEsVencido(t *testing.T) {
	now := time.Now()

	hoy := stock.CheckExpiry(&now, now)
	require.NotNil(t, hoy)
	assert.True(t, hoy.IsExpired, "0 días restantes es vencido")
	assert.False(t, hoy.IsCritical)
	assert.False(t, hoy.IsExpiring)

	pasado := stock.CheckExpiry(expiryIn(now, -48*time.Hour), now)
	require.NotNil(t, pasado)
	assert.True(t, pasado.IsExpired)
	assert.Equal(t, -2, pasado.DaysLeft)
}

func TestCheckExpiry_TreintaDiasEsProximoPeroNoCritico(t *testing.T) {
	now := time.Now()
	exp := stock.CheckExpiry(expiryIn(now, 30*24*time.Hour), now)

	require.NotNil(t, exp)
	assert.Equal(t, 30, exp.DaysLeft)
	assert.True(t, exp.IsExpiring)
	assert.False(t, exp.IsCritical)
	assert.False(t, exp.IsExpired)
}

func TestCheckExpiry_MasDeTreintaDiasEsNormal(t *testing.T) {
	now := time.Now()
	exp := stock.CheckExpiry(expiryIn(now, 31*24*time.Hour), now)

	require.NotNil(t, exp)
	assert.False(t, exp.IsExpiring)
	assert.False(t, exp.IsCritical)
	assert.False(t, exp.IsExpired)
}

func TestCheckExpiry_RedondeaDiasHaciaArriba(t *testing.T) {
	now := time.Now()
	// 2.5 días se redondean a 3
	exp := stock.CheckExpiry(expiryIn(now, 60*time.Hour), now)

	require.NotNil(t, exp)
	assert.Equal(t, 3, exp.DaysLeft, "los días restantes se redondean hacia arriba")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve — estado combinado para presentación
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_PrioridadDeEstados(t *testing.T) {
	now := time.Now()
	vencido := expiryIn(now, -24*time.Hour)
	critico := expiryIn(now, 3*24*time.Hour)
	proximo := expiryIn(now, 20*24*time.Hour)

	cases := []struct {
		name     string
		quantity int
		minStock int
		expiry   *time.Time
		want     stock.State
	}{
		{"sin stock gana a vencido", 0, 5, vencido, stock.StateOut},
		{"stock bajo gana a crítico", 2, 5, critico, stock.StateLow},
		{"vencido gana a crítico", 10, 5, vencido, stock.StateExpired},
		{"crítico gana a próximo", 10, 5, critico, stock.StateCritical},
		{"próximo a vencer", 10, 5, proximo, stock.StateExpiring},
		{"normal sin fecha", 10, 5, nil, stock.StateOK},
	}
	for _, c := range cases {
		got := stock.Resolve(c.quantity, c.minStock, c.expiry, now)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestState_Etiquetas(t *testing.T) {
	assert.Equal(t, "Sin stock", stock.StateOut.String())
	assert.Equal(t, "Stock bajo", stock.StateLow.String())
	assert.Equal(t, "Vencido", stock.StateExpired.String())
	assert.Equal(t, "Normal", stock.StateOK.String())
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Tipos de alerta.
const (
	AlertDanger  = "danger"
	AlertWarning = "warning"
)

// Prioridades de alerta; solo se usan para ordenar, no se persisten.
const (
	PriorityWarning = 2
	PriorityDanger  = 3
)

// Alert alerta derivada de un producto; se regenera en cada consulta.
type Alert struct {
	Type        string // danger | warning
	Title       string
	Description string
	Product     *entity.Product
	Priority    int // 2 | 3
}

// Stats estadísticas agregadas del inventario de un usuario.
type Stats struct {
	TotalProducts int
	TotalValue    decimal.Decimal // sum(cantidad * precio)
	LowStock      int             // productos con stock bajo o agotado
	Expiring      int             // productos por vencer, críticos o vencidos
}

// CategoryCount cantidad de productos por categoría (orden de aparición).
type CategoryCount struct {
	Category string
	Count    int
}

// StockRankItem producto rankeado por porcentaje de stock frente al mínimo.
type StockRankItem struct {
	Name     string
	Quantity int
	MinStock int
	Percent  float64 // cantidad / mínimo * 100
}

// DashboardSummary todo lo que el dashboard pinta en una pasada.
type DashboardSummary struct {
	Stats      Stats
	Alerts     []Alert
	Categories []CategoryCount
	StockRank  []StockRankItem
	Recent     []ProductRow
	DateLabel  string
}

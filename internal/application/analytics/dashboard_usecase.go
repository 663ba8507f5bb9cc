// Package analytics compone las alertas de stock/vencimiento y las
// estadísticas agregadas que consume el dashboard.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/domain/stock"
	"github.com/jhoicas/inventario-local/pkg/format"
)

const (
	stockRankLimit = 8 // productos en el widget de menor stock
	recentLimit    = 5 // productos recientes en el dashboard
)

// DashboardUseCase genera el resumen del inventario del usuario activo.
//
// Todo es derivado-en-lectura: alertas y estadísticas se recalculan en cada
// llamada a partir de los productos actuales y de "ahora"; nada se persiste.
type DashboardUseCase struct {
	repo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary construye el DashboardSummary del dueño en una sola lectura de la
// colección: estadísticas, alertas ordenadas, distribución por categoría,
// ranking de menor stock y productos recientes.
func (uc *DashboardUseCase) Summary(userID string) (*dto.DashboardSummary, error) {
	products, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	return &dto.DashboardSummary{
		Stats:      ComputeStats(products, now),
		Alerts:     ComputeAlerts(products, now),
		Categories: categoryDistribution(products),
		StockRank:  lowStockRanking(products, stockRankLimit),
		Recent:     recentProducts(products, now, recentLimit),
		DateLabel:  format.DateLabel(now),
	}, nil
}

// ComputeAlerts evalúa cada producto y emite hasta dos alertas: una de stock
// (sin stock > stock bajo) y una de vencimiento (vencido > crítico > próximo).
// El resultado queda ordenado por prioridad descendente con orden estable:
// los empates conservan el orden de iteración de los productos.
func ComputeAlerts(products []*entity.Product, now time.Time) []dto.Alert {
	alerts := []dto.Alert{}

	for _, p := range products {
		st := stock.Check(p.Quantity, p.MinStock)
		if st.IsOut {
			alerts = append(alerts, dto.Alert{
				Type:        dto.AlertDanger,
				Title:       "Producto sin stock",
				Description: fmt.Sprintf("%s está sin stock disponible", p.Name),
				Product:     p,
				Priority:    dto.PriorityDanger,
			})
		} else if st.IsLow {
			alerts = append(alerts, dto.Alert{
				Type:        dto.AlertWarning,
				Title:       "Stock bajo",
				Description: fmt.Sprintf("%s tiene apenas %d unidades (mínimo: %d)", p.Name, p.Quantity, p.MinStock),
				Product:     p,
				Priority:    dto.PriorityWarning,
			})
		}

		exp := stock.CheckExpiry(p.ExpiryDate, now)
		if exp == nil {
			continue
		}
		switch {
		case exp.IsExpired:
			alerts = append(alerts, dto.Alert{
				Type:        dto.AlertDanger,
				Title:       "Producto vencido",
				Description: fmt.Sprintf("%s venció el %s", p.Name, format.Date(p.ExpiryDate)),
				Product:     p,
				Priority:    dto.PriorityDanger,
			})
		case exp.IsCritical:
			alerts = append(alerts, dto.Alert{
				Type:        dto.AlertDanger,
				Title:       "Vencimiento crítico",
				Description: fmt.Sprintf("%s vence en %d días", p.Name, exp.DaysLeft),
				Product:     p,
				Priority:    dto.PriorityDanger,
			})
		case exp.IsExpiring:
			alerts = append(alerts, dto.Alert{
				Type:        dto.AlertWarning,
				Title:       "Vencimiento próximo",
				Description: fmt.Sprintf("%s vence en %d días", p.Name, exp.DaysLeft),
				Product:     p,
				Priority:    dto.PriorityWarning,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority > alerts[j].Priority
	})
	return alerts
}

// ComputeStats agrega el inventario completo del usuario: total de productos,
// valor total (cantidad por precio), productos con stock bajo o agotado y
// productos en cualquier estado de vencimiento.
func ComputeStats(products []*entity.Product, now time.Time) dto.Stats {
	stats := dto.Stats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}

	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))

		st := stock.Check(p.Quantity, p.MinStock)
		if st.IsLow || st.IsOut {
			stats.LowStock++
		}
		if exp := stock.CheckExpiry(p.ExpiryDate, now); exp != nil &&
			(exp.IsExpiring || exp.IsCritical || exp.IsExpired) {
			stats.Expiring++
		}
	}
	return stats
}

// categoryDistribution cuenta productos por categoría en orden de aparición.
func categoryDistribution(products []*entity.Product) []dto.CategoryCount {
	index := map[string]int{}
	counts := []dto.CategoryCount{}
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Sin categoría"
		}
		if i, ok := index[category]; ok {
			counts[i].Count++
			continue
		}
		index[category] = len(counts)
		counts = append(counts, dto.CategoryCount{Category: category, Count: 1})
	}
	return counts
}

// lowStockRanking ordena los productos con existencias por porcentaje de
// stock frente al mínimo, de menor a mayor. Un mínimo de 0 va al final.
func lowStockRanking(products []*entity.Product, limit int) []dto.StockRankItem {
	items := []dto.StockRankItem{}
	for _, p := range products {
		if p.Quantity <= 0 {
			continue
		}
		percent := math.Inf(1)
		if p.MinStock > 0 {
			percent = float64(p.Quantity) / float64(p.MinStock) * 100
		}
		items = append(items, dto.StockRankItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			MinStock: p.MinStock,
			Percent:  percent,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Percent < items[j].Percent
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// recentProducts devuelve los últimos productos creados, clasificados.
func recentProducts(products []*entity.Product, now time.Time, limit int) []dto.ProductRow {
	recent := make([]*entity.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}

	rows := make([]dto.ProductRow, 0, len(recent))
	for _, p := range recent {
		row := dto.ProductRow{
			Product: p,
			State:   stock.Resolve(p.Quantity, p.MinStock, p.ExpiryDate, now).String(),
		}
		if exp := stock.CheckExpiry(p.ExpiryDate, now); exp != nil {
			row.DaysLeft = exp.DaysLeft
		}
		rows = append(rows, row)
	}
	return rows
}

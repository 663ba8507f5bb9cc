package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// ID vacío significa creación; con ID se actualiza el producto existente.
type SaveProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	ExpiryDate  *time.Time      `json:"expiryDate"`
	Description string          `json:"description"`
}

// Estados aceptados por ListFilter.Status.
const (
	StatusFilterOK       = "ok"
	StatusFilterLow      = "low"
	StatusFilterOut      = "out"
	StatusFilterExpiring = "expiring"
)

// ListFilter filtros y paginación del listado de productos. El estado de la
// vista (búsqueda, página) viaja aquí como parámetros explícitos, no como
// variables de proceso.
type ListFilter struct {
	Search   string // substring case-insensitive sobre nombre, SKU y proveedor
	Category string // igualdad exacta
	Status   string // "", ok, low, out, expiring
	Page     int    // 1-based; fuera de rango devuelve página vacía
	PageSize int    // 0 -> 10
}

// ProductRow producto clasificado listo para render.
type ProductRow struct {
	Product  *entity.Product
	State    string // etiqueta de stock.State
	DaysLeft int    // días hasta vencer; 0 si no aplica estado de vencimiento
}

// ProductListResponse página del listado filtrado.
type ProductListResponse struct {
	Items      []ProductRow
	Page       int
	TotalPages int
	Total      int // productos que pasan el filtro, sin paginar
}

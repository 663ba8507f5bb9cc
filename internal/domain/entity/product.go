package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitDefault unidad de medida cuando el producto no especifica una.
const UnitDefault = "UN"

// Product representa un producto del inventario de un usuario.
// SKU es único por dueño (comparación case-insensitive); la unicidad la
// valida el caso de uso antes de persistir.
type Product struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"` // dueño; se fija al crear y no se reasigna
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier,omitempty"`
	Quantity    int             `json:"quantity"` // >= 0
	MinStock    int             `json:"minStock"` // >= 0
	Price       decimal.Decimal `json:"price"`    // >= 0
	Unit        string          `json:"unit"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

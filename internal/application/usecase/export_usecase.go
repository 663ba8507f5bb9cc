package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/format"
)

// exportHeader cabecera del archivo exportado, en el orden del formato.
var exportHeader = []string{
	"SKU", "Nombre", "Categoría", "Cantidad", "Stock Mínimo",
	"Precio Unitario", "Unidad", "Proveedor", "Vencimiento", "Descripción",
}

// ExportUseCase exporta el inventario de un usuario como texto separado por
// punto y coma. Es un formato de salida únicamente; no se reimporta.
type ExportUseCase struct {
	repo repository.ProductRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ProductRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// WriteCSV escribe cabecera y una fila por producto del dueño, separadas con
// ';' y '\n'. Devuelve domain.ErrNoProducts si el inventario está vacío.
func (uc *ExportUseCase) WriteCSV(userID string, w io.Writer) error {
	products, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return domain.ErrNoProducts
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, p := range products {
		if err := cw.Write(exportRow(p)); err != nil {
			return fmt.Errorf("escribir producto %s: %w", p.SKU, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(p *entity.Product) []string {
	unit := p.Unit
	if unit == "" {
		unit = entity.UnitDefault
	}
	expiry := ""
	if p.ExpiryDate != nil {
		expiry = format.Date(p.ExpiryDate)
	}
	return []string{
		p.SKU,
		p.Name,
		p.Category,
		strconv.Itoa(p.Quantity),
		strconv.Itoa(p.MinStock),
		p.Price.String(),
		unit,
		p.Supplier,
		expiry,
		p.Description,
	}
}

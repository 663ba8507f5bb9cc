package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/domain/stock"
)

const defaultPageSize = 10

// ProductUseCase casos de uso CRUD para productos del usuario activo.
// La validación (campos, valores negativos, SKU duplicado) vive aquí; el
// repositorio solo persiste.
type ProductUseCase struct {
	repo        repository.ProductRepository
	sessionRepo repository.SessionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, sessionRepo repository.SessionRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, sessionRepo: sessionRepo}
}

// Save crea o actualiza un producto. Sin ID crea uno nuevo con el dueño de la
// sesión activa; con ID actualiza preservando id, dueño y fecha de creación.
// Actualizar un ID inexistente devuelve domain.ErrNotFound sin tocar nada.
func (uc *ProductUseCase) Save(in dto.SaveProductRequest) (*entity.Product, error) {
	session, err := uc.sessionRepo.Get()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	category := strings.TrimSpace(in.Category)

	if name == "" || sku == "" || category == "" {
		return nil, domain.ErrRequiredFields
	}
	if in.Quantity < 0 || in.MinStock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrNegativeValues
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.UnitDefault
	}

	now := time.Now()

	if in.ID == "" {
		if err := uc.checkSKU(session.ID, sku, ""); err != nil {
			return nil, err
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			UserID:      session.ID,
			Name:        name,
			SKU:         sku,
			Category:    category,
			Supplier:    strings.TrimSpace(in.Supplier),
			Quantity:    in.Quantity,
			MinStock:    in.MinStock,
			Price:       in.Price,
			Unit:        unit,
			ExpiryDate:  in.ExpiryDate,
			Description: strings.TrimSpace(in.Description),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.Create(product); err != nil {
			return nil, err
		}
		return product, nil
	}

	existing, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkSKU(existing.UserID, sku, existing.ID); err != nil {
		return nil, err
	}

	updated := &entity.Product{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Name:        name,
		SKU:         sku,
		Category:    category,
		Supplier:    strings.TrimSpace(in.Supplier),
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Price:       in.Price,
		Unit:        unit,
		ExpiryDate:  in.ExpiryDate,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}
	if err := uc.repo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// checkSKU valida la unicidad del SKU dentro del inventario del dueño,
// ignorando mayúsculas y el propio producto en edición.
func (uc *ProductUseCase) checkSKU(userID, sku, selfID string) error {
	owned, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return err
	}
	for _, p := range owned {
		if p.ID != selfID && strings.EqualFold(p.SKU, sku) {
			return domain.ErrDuplicateSKU
		}
	}
	return nil
}

// Delete elimina un producto por ID. Un ID inexistente es un no-op exitoso.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve una página del inventario del dueño aplicando búsqueda,
// categoría y estado. El orden base es el de inserción en el almacenamiento.
func (uc *ProductUseCase) List(userID string, filter dto.ListFilter) (*dto.ProductListResponse, error) {
	owned, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := make([]*entity.Product, 0, len(owned))
	for _, p := range owned {
		if matchesFilter(p, filter, now) {
			filtered = append(filtered, p)
		}
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]dto.ProductRow, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, toRow(p, now))
	}

	return &dto.ProductListResponse{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func matchesFilter(p *entity.Product, filter dto.ListFilter, now time.Time) bool {
	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) &&
			!strings.Contains(strings.ToLower(p.Supplier), term) {
			return false
		}
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Status == "" {
		return true
	}

	st := stock.Check(p.Quantity, p.MinStock)
	exp := stock.CheckExpiry(p.ExpiryDate, now)

	switch filter.Status {
	case dto.StatusFilterOK:
		return !st.IsLow && !st.IsOut &&
			(exp == nil || (!exp.IsExpiring && !exp.IsCritical && !exp.IsExpired))
	case dto.StatusFilterLow:
		return st.IsLow
	case dto.StatusFilterOut:
		return st.IsOut
	case dto.StatusFilterExpiring:
		return exp != nil && (exp.IsExpiring || exp.IsCritical || exp.IsExpired)
	default:
		return true
	}
}

func toRow(p *entity.Product, now time.Time) dto.ProductRow {
	row := dto.ProductRow{
		Product: p,
		State:   stock.Resolve(p.Quantity, p.MinStock, p.ExpiryDate, now).String(),
	}
	if exp := stock.CheckExpiry(p.ExpiryDate, now); exp != nil {
		row.DaysLeft = exp.DaysLeft
	}
	return row
}

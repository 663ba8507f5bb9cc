package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// La colección completa vive bajo una sola clave; cada operación de escritura
// es un read-modify-write del blob entero. El orden de inserción se preserva.
// La unicidad del SKU por dueño NO se valida aquí: es responsabilidad de la
// capa de validación (caso de uso) antes de llamar a Create/Update.
type ProductRepository interface {
	// ListByOwner devuelve los productos del dueño en orden de inserción.
	ListByOwner(userID string) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	Create(product *entity.Product) error
	// Update reemplaza el producto con el mismo ID. Si el ID no existe
	// devuelve domain.ErrNotFound y la colección queda intacta.
	Update(product *entity.Product) error
	// Delete elimina por ID sin mirar el dueño. Un ID inexistente es un
	// no-op exitoso; solo falla el almacenamiento.
	Delete(id string) error
}

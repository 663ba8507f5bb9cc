package localstore

import (
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el blob
// "products". Todos los dueños comparten la misma colección; el filtrado por
// dueño se hace al leer.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) listAll() ([]*entity.Product, error) {
	products := []*entity.Product{}
	if err := r.store.Load(keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListByOwner devuelve los productos del dueño en orden de inserción.
func (r *ProductRepo) ListByOwner(userID string) ([]*entity.Product, error) {
	all, err := r.listAll()
	if err != nil {
		return nil, err
	}
	owned := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// GetByID devuelve (nil, nil) si el producto no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	all, err := r.listAll()
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create agrega el producto al final de la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	all, err := r.listAll()
	if err != nil {
		return err
	}
	all = append(all, product)
	return r.store.Save(keyProducts, all)
}

// Update reemplaza el producto con el mismo ID preservando su posición.
// Devuelve domain.ErrNotFound si el ID no existe; la colección no se toca.
func (r *ProductRepo) Update(product *entity.Product) error {
	all, err := r.listAll()
	if err != nil {
		return err
	}
	for i, p := range all {
		if p.ID == product.ID {
			all[i] = product
			return r.store.Save(keyProducts, all)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por ID sin mirar el dueño. Un ID inexistente es un no-op
// exitoso.
func (r *ProductRepo) Delete(id string) error {
	all, err := r.listAll()
	if err != nil {
		return err
	}
	kept := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.store.Save(keyProducts, kept)
}

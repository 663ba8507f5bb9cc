package localstore

import (
	"strings"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el blob "users".
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// List devuelve todos los usuarios registrados (orden de inserción).
func (r *UserRepo) List() ([]*entity.User, error) {
	users := []*entity.User{}
	if err := r.store.Load(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create agrega el usuario al final de la colección y la persiste completa.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.store.Save(keyUsers, users)
}

// FindByEmail busca por email sin distinguir mayúsculas. Devuelve (nil, nil)
// si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail busca por email con comparación case-insensitive.
	// Devuelve (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}

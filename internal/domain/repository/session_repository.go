package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// SessionRepository define el puerto de persistencia para la sesión activa
// y para el email recordado del formulario de login.
type SessionRepository interface {
	// Get devuelve (nil, nil) si no hay sesión activa.
	Get() (*entity.Session, error)
	Set(session *entity.Session) error
	Clear() error

	RememberEmail(email string) error
	// RememberedEmail devuelve "" si no hay email recordado.
	RememberedEmail() (string, error)
}

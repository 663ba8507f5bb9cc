package localstore

import (
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre las claves
// "currentUser" y "rememberUser".
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador de persistencia para la sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Get devuelve la sesión activa o (nil, nil) si no hay nadie logueado.
func (r *SessionRepo) Get() (*entity.Session, error) {
	if !r.store.Exists(keyCurrentUser) {
		return nil, nil
	}
	var s entity.Session
	if err := r.store.Load(keyCurrentUser, &s); err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, nil
	}
	return &s, nil
}

// Set persiste la sesión como registro único.
func (r *SessionRepo) Set(session *entity.Session) error {
	return r.store.Save(keyCurrentUser, session)
}

// Clear destruye la sesión activa.
func (r *SessionRepo) Clear() error {
	return r.store.Remove(keyCurrentUser)
}

// RememberEmail guarda el email para pre-llenar el login.
func (r *SessionRepo) RememberEmail(email string) error {
	return r.store.Save(keyRememberUser, email)
}

// RememberedEmail devuelve "" si no hay email recordado.
func (r *SessionRepo) RememberedEmail() (string, error) {
	var email string
	if err := r.store.Load(keyRememberUser, &email); err != nil {
		return "", err
	}
	return email, nil
}

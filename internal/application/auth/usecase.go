// Package auth implementa el manejador de sesión e identidad: registro,
// login, logout y lectura de la sesión activa.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

const minPasswordLen = 6

// UseCase casos de uso de autenticación. Las contraseñas se guardan como
// hash bcrypt y se comparan en tiempo constante; nunca en claro.
type UseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	bcryptCost  int
}

// NewUseCase construye el caso de uso. cost <= 0 usa bcrypt.DefaultCost.
func NewUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cost int) *UseCase {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UseCase{userRepo: userRepo, sessionRepo: sessionRepo, bcryptCost: cost}
}

// Register valida y crea una cuenta nueva, deja la sesión iniciada y la
// devuelve. Las reglas se comprueban en orden fijo y gana la primera violada:
// campos obligatorios, largo de contraseña, confirmación, términos, email
// duplicado (case-insensitive). La empresa es opcional.
func (uc *UseCase) Register(in dto.RegisterRequest) (*entity.Session, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	company := strings.TrimSpace(in.Company)

	if name == "" || email == "" || in.Password == "" || in.PasswordConfirm == "" {
		return nil, domain.ErrRequiredFields
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	if in.Password != in.PasswordConfirm {
		return nil, domain.ErrPasswordMismatch
	}
	if !in.AcceptTerms {
		return nil, domain.ErrTermsNotAccepted
	}

	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Company:      company,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Login automático tras el registro.
	session := entity.NewSession(user)
	if err := uc.sessionRepo.Set(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Login verifica email y contraseña, persiste la sesión derivada y la
// devuelve. Con Remember activo guarda el email para pre-llenar el login.
func (uc *UseCase) Login(in dto.LoginRequest) (*entity.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrRequiredFields
	}

	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	session := entity.NewSession(user)
	if err := uc.sessionRepo.Set(session); err != nil {
		return nil, err
	}
	if in.Remember {
		if err := uc.sessionRepo.RememberEmail(email); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Logout destruye la sesión activa. Sin sesión es un no-op exitoso.
func (uc *UseCase) Logout() error {
	return uc.sessionRepo.Clear()
}

// CurrentSession devuelve la sesión activa o (nil, nil) si no hay.
func (uc *UseCase) CurrentSession() (*entity.Session, error) {
	return uc.sessionRepo.Get()
}

// RememberedEmail devuelve el email guardado para el login, o "".
func (uc *UseCase) RememberedEmail() (string, error) {
	return uc.sessionRepo.RememberedEmail()
}

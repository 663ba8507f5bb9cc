package entity

import "time"

// User representa una cuenta registrada. Todas las cuentas conviven en el
// mismo blob "users"; el aislamiento entre dueños se hace por Product.UserID.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // único, comparación case-insensitive
	Company      string    `json:"company"`
	PasswordHash string    `json:"password"` // hash bcrypt, nunca la contraseña en claro
	CreatedAt    time.Time `json:"createdAt"`
}

// Session proyección mínima del usuario activo, persistida bajo "currentUser"
// mientras dura la sesión.
type Session struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// NewSession deriva la sesión a partir de un usuario.
func NewSession(u *User) *Session {
	return &Session{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Company: u.Company,
	}
}

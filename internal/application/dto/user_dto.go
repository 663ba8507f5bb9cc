package dto

// RegisterRequest entrada para registrar una cuenta.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"` // opcional
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"` // guarda el email bajo "rememberUser"
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los errores de validación y de autenticación son recuperables: la capa de
// presentación los muestra como mensaje y la operación se aborta sin dejar
// estado parcial. Los fallos de almacenamiento llegan envueltos con %w desde
// el adaptador y se detectan con errors.Is sobre ErrStorage.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no hay sesión activa")
	ErrStorage      = errors.New("fallo de almacenamiento")

	// Validación de registro (se comprueban en este orden).
	ErrRequiredFields     = errors.New("complete todos los campos obligatorios")
	ErrPasswordTooShort   = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrTermsNotAccepted   = errors.New("debe aceptar los términos de uso")
	ErrEmailAlreadyExists = errors.New("este email ya está registrado")

	// Autenticación.
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrWrongPassword = errors.New("contraseña incorrecta")

	// Validación de productos.
	ErrNegativeValues = errors.New("los valores numéricos deben ser positivos")
	ErrDuplicateSKU   = errors.New("ya existe un producto con este SKU")
	ErrNoProducts     = errors.New("no hay productos para exportar")
)

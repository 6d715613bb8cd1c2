package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("Usuario no encontrado")
	ErrInvalidCredentials = errors.New("Credenciales incorrectas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrPasswordTooShort   = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

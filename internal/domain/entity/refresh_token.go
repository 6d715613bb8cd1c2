package entity

import "time"

// RefreshToken es un token de refresco opaco persistido por su hash SHA-256.
// El valor plano solo viaja al cliente; en reposo nunca se guarda.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Expired indica si el token ya venció respecto de now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

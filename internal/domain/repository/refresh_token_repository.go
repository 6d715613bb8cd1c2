package repository

import "github.com/UserBastianProboste/practicas-api/internal/domain/entity"

// RefreshTokenRepository define el puerto de persistencia para tokens de refresco.
// GetByHash solo devuelve tokens no revocados; la expiración la decide el caso de uso.
type RefreshTokenRepository interface {
	Create(token *entity.RefreshToken) error
	GetByHash(tokenHash string) (*entity.RefreshToken, error)
	Revoke(id string) error
}

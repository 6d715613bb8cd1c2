package repository

import "github.com/UserBastianProboste/practicas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create debe devolver domain.ErrEmailAlreadyExists o domain.ErrUsernameTaken
// según la constraint única violada, para que el caso de uso de registro pueda
// reintentar la derivación de username sin ventana de carrera.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UsernameExists(username string) (bool, error)
	ListByRol(rol string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}

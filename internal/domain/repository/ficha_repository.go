package repository

import "github.com/UserBastianProboste/practicas-api/internal/domain/entity"

// FichaRepository define el puerto de persistencia para FichaPractica (DIP).
type FichaRepository interface {
	Create(ficha *entity.FichaPractica) error
	GetByID(id string) (*entity.FichaPractica, error)
	List(limit, offset int) ([]*entity.FichaPractica, error)
	ListByEstudiante(estudianteID string, limit, offset int) ([]*entity.FichaPractica, error)
	UpdateEstado(id, estado, comentarios string) error
}

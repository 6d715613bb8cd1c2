package usecase

import (
	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
)

// EstudianteUseCase listados sobre las cuentas con rol estudiante.
type EstudianteUseCase struct {
	userRepo repository.UserRepository
}

// NewEstudianteUseCase construye el caso de uso con el puerto de persistencia.
func NewEstudianteUseCase(userRepo repository.UserRepository) *EstudianteUseCase {
	return &EstudianteUseCase{userRepo: userRepo}
}

// List devuelve las cuentas con rol estudiante, paginadas.
func (uc *EstudianteUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.ListByRol(entity.RolEstudiante, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Rol:       u.Rol,
			Carrera:   u.Carrera,
			Telefono:  u.Telefono,
			Direccion: u.Direccion,
			Rut:       u.Rut,
		})
	}
	return &dto.UserListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

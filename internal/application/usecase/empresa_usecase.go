package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
)

// EmpresaUseCase aplica reglas de negocio para empresas.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con el puerto de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una nueva empresa. Acepta cualquier subconjunto de campos;
// no hay invariantes más allá de la existencia.
func (uc *EmpresaUseCase) Create(in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	now := time.Now()
	empresa := &entity.Empresa{
		ID:          uuid.New().String(),
		RazonSocial: in.RazonSocial,
		Direccion:   in.Direccion,
		JefeDirecto: in.JefeDirecto,
		Cargo:       in.Cargo,
		Telefono:    in.Telefono,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// List devuelve las empresas paginadas.
func (uc *EmpresaUseCase) List(limit, offset int) (*dto.EmpresaListResponse, error) {
	empresas, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:          e.ID,
		RazonSocial: e.RazonSocial,
		Nombre:      e.DisplayName(),
		Direccion:   e.Direccion,
		JefeDirecto: e.JefeDirecto,
		Cargo:       e.Cargo,
		Telefono:    e.Telefono,
		Email:       e.Email,
	}
}

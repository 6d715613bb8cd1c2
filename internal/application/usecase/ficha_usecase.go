package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
)

// FichaUseCase casos de uso de fichas de práctica: creación por el estudiante
// autenticado, listado filtrado por rol y cambio de estado por coordinador.
type FichaUseCase struct {
	fichaRepo   repository.FichaRepository
	empresaRepo repository.EmpresaRepository
}

// NewFichaUseCase construye el caso de uso con los puertos de persistencia.
func NewFichaUseCase(fichaRepo repository.FichaRepository, empresaRepo repository.EmpresaRepository) *FichaUseCase {
	return &FichaUseCase{fichaRepo: fichaRepo, empresaRepo: empresaRepo}
}

// Create crea una ficha para el estudiante autenticado. El estudiante siempre
// es el llamador (nunca viene del cliente); la empresa debe existir. Estado
// inicial pendiente y fecha de postulación fijada aquí, inmutable después.
func (uc *FichaUseCase) Create(estudianteID, rol string, in dto.CreateFichaRequest) (*dto.FichaResponse, error) {
	if rol != entity.RolEstudiante {
		return nil, domain.ErrForbidden
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}

	tipo := in.TipoPractica
	if tipo == "" {
		tipo = entity.PracticaUno
	}
	if !entity.TipoPracticaValido(tipo) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ficha := &entity.FichaPractica{
		ID:               uuid.New().String(),
		EstudianteID:     estudianteID,
		EmpresaID:        in.EmpresaID,
		TipoPractica:     tipo,
		FechaInicio:      in.FechaInicio,
		FechaTermino:     in.FechaTermino,
		HorarioTrabajo:   in.HorarioTrabajo,
		HorarioColacion:  in.HorarioColacion,
		CargoDesarrollar: in.CargoDesarrollar,
		Departamento:     in.Departamento,
		Actividades:      in.Actividades,
		FechaPostulacion: now,
		Estado:           entity.EstadoPendiente,
		Comentarios:      "",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.fichaRepo.Create(ficha); err != nil {
		return nil, err
	}
	return toFichaResponse(ficha), nil
}

// List devuelve las fichas visibles para el llamador: un coordinador ve todas,
// un estudiante solo las propias.
func (uc *FichaUseCase) List(callerID, rol string, limit, offset int) (*dto.FichaListResponse, error) {
	var (
		fichas []*entity.FichaPractica
		err    error
	)
	if rol == entity.RolCoordinador {
		fichas, err = uc.fichaRepo.List(limit, offset)
	} else {
		fichas, err = uc.fichaRepo.ListByEstudiante(callerID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.FichaResponse, 0, len(fichas))
	for _, f := range fichas {
		items = append(items, *toFichaResponse(f))
	}
	return &dto.FichaListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// UpdateEstado cambia el estado del flujo de aprobación. Solo coordinadores.
func (uc *FichaUseCase) UpdateEstado(rol, fichaID string, in dto.UpdateEstadoRequest) (*dto.FichaResponse, error) {
	if rol != entity.RolCoordinador {
		return nil, domain.ErrForbidden
	}
	if !entity.EstadoValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	ficha, err := uc.fichaRepo.GetByID(fichaID)
	if err != nil {
		return nil, err
	}
	if ficha == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.fichaRepo.UpdateEstado(fichaID, in.Estado, in.Comentarios); err != nil {
		return nil, err
	}
	ficha.Estado = in.Estado
	ficha.Comentarios = in.Comentarios
	return toFichaResponse(ficha), nil
}

func toFichaResponse(f *entity.FichaPractica) *dto.FichaResponse {
	return &dto.FichaResponse{
		ID:               f.ID,
		Estudiante:       f.EstudianteID,
		Empresa:          f.EmpresaID,
		TipoPractica:     f.TipoPractica,
		FechaInicio:      f.FechaInicio,
		FechaTermino:     f.FechaTermino,
		HorarioTrabajo:   f.HorarioTrabajo,
		HorarioColacion:  f.HorarioColacion,
		CargoDesarrollar: f.CargoDesarrollar,
		Departamento:     f.Departamento,
		Actividades:      f.Actividades,
		FechaPostulacion: f.FechaPostulacion,
		Estado:           f.Estado,
		Comentarios:      f.Comentarios,
	}
}

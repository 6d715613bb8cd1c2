package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/application/dto"
	"github.com/UserBastianProboste/practicas-api/internal/application/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpresaRepo struct {
	mu       sync.Mutex
	empresas map[string]*entity.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{}}
}

func (r *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.empresas[e.ID] = &cp
	return nil
}

func (r *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.empresas[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Empresa
	for _, e := range r.empresas {
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeEmpresaRepo) Update(e *entity.Empresa) error { return nil }

type fakeFichaRepo struct {
	mu     sync.Mutex
	fichas map[string]*entity.FichaPractica
}

func newFakeFichaRepo() *fakeFichaRepo {
	return &fakeFichaRepo{fichas: map[string]*entity.FichaPractica{}}
}

func (r *fakeFichaRepo) Create(f *entity.FichaPractica) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *f
	r.fichas[f.ID] = &cp
	return nil
}

func (r *fakeFichaRepo) GetByID(id string) (*entity.FichaPractica, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.fichas[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFichaRepo) List(limit, offset int) ([]*entity.FichaPractica, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.FichaPractica
	for _, f := range r.fichas {
		cp := *f
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeFichaRepo) ListByEstudiante(estudianteID string, limit, offset int) ([]*entity.FichaPractica, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.FichaPractica
	for _, f := range r.fichas {
		if f.EstudianteID == estudianteID {
			cp := *f
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeFichaRepo) UpdateEstado(id, estado, comentarios string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fichas[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Estado = estado
	f.Comentarios = comentarios
	return nil
}

func setupFichaUC(t *testing.T) (*usecase.FichaUseCase, *fakeFichaRepo, string) {
	t.Helper()
	empresas := newFakeEmpresaRepo()
	empresa := &entity.Empresa{ID: "empresa-1", RazonSocial: "ACME"}
	require.NoError(t, empresas.Create(empresa))
	fichas := newFakeFichaRepo()
	return usecase.NewFichaUseCase(fichas, empresas), fichas, empresa.ID
}

func crearFicha(t *testing.T, uc *usecase.FichaUseCase, estudianteID, empresaID string) *dto.FichaResponse {
	t.Helper()
	out, err := uc.Create(estudianteID, entity.RolEstudiante, dto.CreateFichaRequest{
		EmpresaID:    empresaID,
		TipoPractica: entity.PracticaUno,
		FechaInicio:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		FechaTermino: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestFichaCreate_FuerzaEstudianteYEstadoInicial(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)

	out := crearFicha(t, uc, "estudiante-1", empresaID)

	assert.Equal(t, "estudiante-1", out.Estudiante, "el estudiante es siempre el llamador")
	assert.Equal(t, entity.EstadoPendiente, out.Estado)
	assert.False(t, out.FechaPostulacion.IsZero(), "fecha de postulación se fija al crear")
}

func TestFichaCreate_CoordinadorProhibido(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)

	_, err := uc.Create("coord-1", entity.RolCoordinador, dto.CreateFichaRequest{EmpresaID: empresaID})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFichaCreate_EmpresaInexistente(t *testing.T) {
	uc, _, _ := setupFichaUC(t)

	_, err := uc.Create("estudiante-1", entity.RolEstudiante, dto.CreateFichaRequest{EmpresaID: "no-existe"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFichaCreate_TipoPorDefectoYValidacion(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)

	out, err := uc.Create("estudiante-1", entity.RolEstudiante, dto.CreateFichaRequest{EmpresaID: empresaID})
	require.NoError(t, err)
	assert.Equal(t, entity.PracticaUno, out.TipoPractica, "tipo por defecto practica_1")

	_, err = uc.Create("estudiante-1", entity.RolEstudiante, dto.CreateFichaRequest{
		EmpresaID:    empresaID,
		TipoPractica: "practica_3",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado filtrado por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestFichaList_EstudianteSoloVeLasPropias(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)
	crearFicha(t, uc, "estudiante-1", empresaID)
	crearFicha(t, uc, "estudiante-1", empresaID)
	crearFicha(t, uc, "estudiante-2", empresaID)

	out, err := uc.List("estudiante-1", entity.RolEstudiante, 20, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, "estudiante-1", item.Estudiante)
	}
}

func TestFichaList_CoordinadorVeTodas(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)
	crearFicha(t, uc, "estudiante-1", empresaID)
	crearFicha(t, uc, "estudiante-2", empresaID)

	out, err := uc.List("coord-1", entity.RolCoordinador, 20, 0)
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestFichaUpdateEstado_SoloCoordinador(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)
	ficha := crearFicha(t, uc, "estudiante-1", empresaID)

	_, err := uc.UpdateEstado(entity.RolEstudiante, ficha.ID, dto.UpdateEstadoRequest{Estado: entity.EstadoAprobada})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.UpdateEstado(entity.RolCoordinador, ficha.ID, dto.UpdateEstadoRequest{
		Estado:      entity.EstadoAprobada,
		Comentarios: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobada, out.Estado)
	assert.Equal(t, "ok", out.Comentarios)
}

func TestFichaUpdateEstado_EstadoInvalido(t *testing.T) {
	uc, _, empresaID := setupFichaUC(t)
	ficha := crearFicha(t, uc, "estudiante-1", empresaID)

	_, err := uc.UpdateEstado(entity.RolCoordinador, ficha.ID, dto.UpdateEstadoRequest{Estado: "archivada"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFichaUpdateEstado_FichaInexistente(t *testing.T) {
	uc, _, _ := setupFichaUC(t)

	_, err := uc.UpdateEstado(entity.RolCoordinador, "no-existe", dto.UpdateEstadoRequest{Estado: entity.EstadoAprobada})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

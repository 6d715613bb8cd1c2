package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	"github.com/UserBastianProboste/practicas-api/internal/domain/repository"
)

var _ repository.FichaRepository = (*FichaRepo)(nil)

// FichaRepo implementación del puerto FichaRepository sobre PostgreSQL.
// La tabla fuerza con FK + trigger que estudiante_id referencie un usuario con
// rol estudiante; aquí no se re-valida.
type FichaRepo struct {
	pool *pgxpool.Pool
}

// NewFichaRepository construye el adaptador de persistencia para fichas de práctica.
func NewFichaRepository(pool *pgxpool.Pool) *FichaRepo {
	return &FichaRepo{pool: pool}
}

const fichaColumns = `id, estudiante_id, empresa_id, tipo_practica, fecha_inicio, fecha_termino,
		horario_trabajo, horario_colacion, cargo_desarrollar, departamento, actividades,
		fecha_postulacion, estado, comentarios, created_at, updated_at`

// Create persiste una nueva ficha de práctica.
func (r *FichaRepo) Create(ficha *entity.FichaPractica) error {
	query := `
		INSERT INTO fichas_practica (` + fichaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(context.Background(), query,
		ficha.ID, ficha.EstudianteID, ficha.EmpresaID, ficha.TipoPractica,
		ficha.FechaInicio, ficha.FechaTermino,
		ficha.HorarioTrabajo, ficha.HorarioColacion, ficha.CargoDesarrollar,
		ficha.Departamento, ficha.Actividades,
		ficha.FechaPostulacion, ficha.Estado, ficha.Comentarios,
		ficha.CreatedAt, ficha.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ficha: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha por ID. Devuelve (nil, nil) si no existe.
func (r *FichaRepo) GetByID(id string) (*entity.FichaPractica, error) {
	query := `SELECT ` + fichaColumns + ` FROM fichas_practica WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	f, err := scanFicha(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ficha: %w", err)
	}
	return f, nil
}

// List lista todas las fichas con paginación (vista de coordinador).
func (r *FichaRepo) List(limit, offset int) ([]*entity.FichaPractica, error) {
	query := `
		SELECT ` + fichaColumns + `
		FROM fichas_practica ORDER BY fecha_postulacion DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByEstudiante lista las fichas de un estudiante con paginación.
func (r *FichaRepo) ListByEstudiante(estudianteID string, limit, offset int) ([]*entity.FichaPractica, error) {
	query := `
		SELECT ` + fichaColumns + `
		FROM fichas_practica WHERE estudiante_id = $1
		ORDER BY fecha_postulacion DESC LIMIT $2 OFFSET $3`
	return r.queryList(query, estudianteID, limit, offset)
}

// UpdateEstado cambia el estado del flujo de aprobación y los comentarios del coordinador.
// fecha_postulacion no se toca: se fija una sola vez al crear.
func (r *FichaRepo) UpdateEstado(id, estado, comentarios string) error {
	query := `
		UPDATE fichas_practica SET estado = $2, comentarios = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, estado, comentarios)
	if err != nil {
		return fmt.Errorf("update estado ficha: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update estado ficha: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *FichaRepo) queryList(query string, args ...any) ([]*entity.FichaPractica, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fichas: %w", err)
	}
	defer rows.Close()
	var list []*entity.FichaPractica
	for rows.Next() {
		f, err := scanFicha(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ficha: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func scanFicha(row pgx.Row) (*entity.FichaPractica, error) {
	var f entity.FichaPractica
	err := row.Scan(
		&f.ID, &f.EstudianteID, &f.EmpresaID, &f.TipoPractica,
		&f.FechaInicio, &f.FechaTermino,
		&f.HorarioTrabajo, &f.HorarioColacion, &f.CargoDesarrollar,
		&f.Departamento, &f.Actividades,
		&f.FechaPostulacion, &f.Estado, &f.Comentarios,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

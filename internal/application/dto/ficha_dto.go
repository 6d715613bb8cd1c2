package dto

import "time"

// CreateFichaRequest entrada para crear una ficha. El estudiante nunca viene
// del cliente: se fuerza a la cuenta autenticada en el caso de uso.
type CreateFichaRequest struct {
	EmpresaID        string    `json:"empresa"`
	TipoPractica     string    `json:"tipo_practica"`
	FechaInicio      time.Time `json:"fecha_inicio"`
	FechaTermino     time.Time `json:"fecha_termino"`
	HorarioTrabajo   string    `json:"horario_trabajo"`
	HorarioColacion  string    `json:"horario_colacion"`
	CargoDesarrollar string    `json:"cargo_desarrollar"`
	Departamento     string    `json:"departamento"`
	Actividades      string    `json:"actividades"`
}

// UpdateEstadoRequest entrada para que un coordinador cambie el estado del flujo.
type UpdateEstadoRequest struct {
	Estado      string `json:"estado"`
	Comentarios string `json:"comentarios"`
}

// FichaResponse representación de una ficha de práctica.
type FichaResponse struct {
	ID               string    `json:"id"`
	Estudiante       string    `json:"estudiante"`
	Empresa          string    `json:"empresa"`
	TipoPractica     string    `json:"tipo_practica"`
	FechaInicio      time.Time `json:"fecha_inicio"`
	FechaTermino     time.Time `json:"fecha_termino"`
	HorarioTrabajo   string    `json:"horario_trabajo"`
	HorarioColacion  string    `json:"horario_colacion"`
	CargoDesarrollar string    `json:"cargo_desarrollar"`
	Departamento     string    `json:"departamento"`
	Actividades      string    `json:"actividades"`
	FechaPostulacion time.Time `json:"fecha_postulacion"`
	Estado           string    `json:"estado"`
	Comentarios      string    `json:"comentarios"`
}

// FichaListResponse listado de fichas con metadatos de página.
type FichaListResponse struct {
	Items  []FichaResponse `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// AlertaRequest entrada de la notificación por correo. Email vacío = correo
// del llamador autenticado.
type AlertaRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AlertaResponse confirmación de envío.
type AlertaResponse struct {
	Status string `json:"status"`
}

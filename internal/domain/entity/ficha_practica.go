package entity

import "time"

// Tipos de práctica válidos.
const (
	PracticaUno = "practica_1"
	PracticaDos = "practica_2"
)

// Estados del flujo de aprobación de una ficha.
const (
	EstadoPendiente  = "pendiente"
	EstadoAprobada   = "aprobada"
	EstadoRechazada  = "rechazada"
	EstadoCompletada = "completada"
)

// FichaPractica vincula un estudiante con una empresa y lleva el estado del
// flujo de aprobación. EstudianteID debe referenciar un User con rol estudiante
// (FK con CHECK en la tabla); FechaPostulacion se fija al crear y no cambia.
type FichaPractica struct {
	ID               string
	EstudianteID     string
	EmpresaID        string
	TipoPractica     string // practica_1, practica_2
	FechaInicio      time.Time
	FechaTermino     time.Time
	HorarioTrabajo   string
	HorarioColacion  string
	CargoDesarrollar string
	Departamento     string
	Actividades      string
	FechaPostulacion time.Time
	Estado           string // ver constantes Estado*
	Comentarios      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EstadoValido verifica que un estado pertenezca al conjunto permitido.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoAprobada, EstadoRechazada, EstadoCompletada:
		return true
	}
	return false
}

// TipoPracticaValido verifica que el tipo pertenezca al conjunto permitido.
func TipoPracticaValido(tipo string) bool {
	return tipo == PracticaUno || tipo == PracticaDos
}

package entity

import "time"

// Empresa representa una organización receptora de practicantes.
// Todos los campos de contacto son opcionales.
type Empresa struct {
	ID          string
	RazonSocial string
	Direccion   string
	JefeDirecto string
	Cargo       string
	Telefono    string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName devuelve la razón social o un nombre por defecto si está vacía.
func (e *Empresa) DisplayName() string {
	if e.RazonSocial == "" {
		return "Empresa sin nombre"
	}
	return e.RazonSocial
}

package entity

import "time"

// Roles válidos para User.
const (
	RolEstudiante  = "estudiante"
	RolCoordinador = "coordinador"
)

// User representa una cuenta del sistema (estudiante o coordinador).
// Username se deriva del email en el registro y es único en toda la tabla.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Rol          string // estudiante, coordinador
	Carrera      string
	Telefono     string
	Direccion    string
	Rut          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

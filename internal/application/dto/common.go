package dto

// ErrorResponse cuerpo de error HTTP genérico.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DetailResponse cuerpo de error estilo {"detail": ...}, usado por login/refresh
// para no revelar qué campo de la credencial falló.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldErrors errores de validación por campo: clave = campo, valor = mensajes.
// Es el cuerpo 400 del registro; se acumulan todas las fallas, sin cortocircuito.
type FieldErrors map[string][]string

// Add acumula un mensaje para un campo.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasErrors indica si hay al menos una falla registrada.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

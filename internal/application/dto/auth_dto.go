package dto

// RegisterRequest entrada del registro: email y password obligatorios,
// campos de perfil opcionales (default cadena vacía).
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Carrera   string `json:"carrera"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Rut       string `json:"rut"`
}

// LoginRequest entrada del login por email.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida del login: par de tokens más identidad del usuario.
// TipoUsuario es el rol de la cuenta autenticada.
type LoginResponse struct {
	Refresh     string `json:"refresh"`
	Access      string `json:"access"`
	TipoUsuario string `json:"tipo_usuario"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// RefreshRequest entrada de la rotación de tokens.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenPairResponse salida de la rotación: nuevo access y nuevo refresh.
type TokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

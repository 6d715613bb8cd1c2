package dto

// UserResponse representación de una cuenta (sin credencial).
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Rol       string `json:"rol"`
	Carrera   string `json:"carrera"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Rut       string `json:"rut"`
}

// UserListResponse listado de cuentas con metadatos de página.
type UserListResponse struct {
	Items  []UserResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

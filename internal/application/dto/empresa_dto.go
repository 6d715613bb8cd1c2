package dto

// CreateEmpresaRequest entrada para crear una empresa; todos los campos son opcionales.
type CreateEmpresaRequest struct {
	RazonSocial string `json:"razon_social"`
	Direccion   string `json:"direccion"`
	JefeDirecto string `json:"jefe_directo"`
	Cargo       string `json:"cargo"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
}

// EmpresaResponse representación de una empresa. Nombre cae al valor por
// defecto cuando razon_social está vacía.
type EmpresaResponse struct {
	ID          string `json:"id"`
	RazonSocial string `json:"razon_social"`
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion"`
	JefeDirecto string `json:"jefe_directo"`
	Cargo       string `json:"cargo"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
}

// EmpresaListResponse listado de empresas con metadatos de página.
type EmpresaListResponse struct {
	Items  []EmpresaResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

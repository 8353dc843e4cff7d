package dto

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=120"`
	Apellido  string  `json:"apellido"`
	Direccion string  `json:"direccion"`
	Localidad string  `json:"localidad"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=120"`
	Apellido  *string `json:"apellido"`
	Direccion *string `json:"direccion"`
	Localidad *string `json:"localidad"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID        int     `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Direccion string  `json:"direccion"`
	Localidad string  `json:"localidad"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"`
	Estado    bool    `json:"estado"`
}

type ClienteFilter struct {
	Nombre string `form:"nombre"`
	Estado string `form:"estado"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type ClienteListResponse struct {
	Data       []ClienteResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

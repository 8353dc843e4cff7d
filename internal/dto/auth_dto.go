package dto

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required"`
	Password      string `json:"password"       validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	NombreUsuario string  `json:"nombre_usuario" validate:"required,min=3,max=60"`
	Password      string  `json:"password"       validate:"required,min=4"`
	Rol           string  `json:"rol"            validate:"required,oneof=admin veterinario recepcion"`
	Nombre        string  `json:"nombre"         validate:"required"`
	Apellido      string  `json:"apellido"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Telefono      string  `json:"telefono"`
}

type ActualizarUsuarioRequest struct {
	Password string  `json:"password" validate:"omitempty,min=4"`
	Rol      string  `json:"rol"      validate:"omitempty,oneof=admin veterinario recepcion"`
	Nombre   string  `json:"nombre"`
	Apellido *string `json:"apellido"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}

type UsuarioResponse struct {
	ID            int     `json:"id"`
	NombreUsuario string  `json:"nombre_usuario"`
	Rol           string  `json:"rol"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	Email         *string `json:"email"`
	Telefono      string  `json:"telefono"`
	Estado        bool    `json:"estado"`
}

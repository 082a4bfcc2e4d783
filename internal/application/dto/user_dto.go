package dto

// LoginRequest entrada para login (credenciales en texto plano).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el password).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse salida de login: usuario + token bearer opaco.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

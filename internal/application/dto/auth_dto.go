package dto

import "time"

// SignupRequest entrada del registro: crea la cuenta, el negocio y los datos
// semilla en una sola operación atómica.
type SignupRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required,min=1,max=200"`
	BusinessName string `json:"business_name" validate:"required,min=1,max=200"`
	BusinessType string `json:"business_type" validate:"required,oneof=f&b retail service"`
	Currency     string `json:"currency"`
	Timezone     string `json:"timezone"`
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	BusinessID string `json:"business_id"` // opcional: negocio a activar en la sesión
}

// UserResponse salida de una cuenta de usuario. Nunca incluye el hash.
type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Phone             string     `json:"phone,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	Businesses        []string   `json:"businesses"`
	DefaultBusinessID string     `json:"default_business_id,omitempty"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AuthResponse salida de signup/login: usuario, negocio activo y token.
// El token también viaja en la cookie de sesión HTTP-only.
type AuthResponse struct {
	User     UserResponse      `json:"user"`
	Business *BusinessResponse `json:"business,omitempty"`
	Token    string            `json:"token"`
}

// SessionResponse salida de la verificación de sesión.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
	BusinessID    string        `json:"business_id,omitempty"`
	Role          string        `json:"role,omitempty"`
}

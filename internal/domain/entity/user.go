package entity

import "time"

// User es la cuenta de acceso al sistema. Es colección raíz (no pertenece a
// un tenant): un usuario puede tener acceso a varios negocios.
type User struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	IsActive  bool      `json:"-"`

	Email             string     `json:"email"`
	PasswordHash      string     `json:"password_hash"`
	FullName          string     `json:"full_name"`
	Phone             string     `json:"phone,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	Businesses        []string   `json:"businesses"` // ids de negocios con acceso
	DefaultBusinessID string     `json:"default_business_id,omitempty"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

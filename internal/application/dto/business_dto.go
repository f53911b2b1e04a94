package dto

import "time"

// UpdateBusinessRequest entrada para actualizar el negocio activo. Campos
// nulos se dejan como están.
type UpdateBusinessRequest struct {
	BusinessName   *string         `json:"business_name" validate:"omitempty,min=1,max=200"`
	Address        *string         `json:"address"`
	Phone          *string         `json:"phone"`
	TaxNumber      *string         `json:"tax_number"`
	TaxRate        *float64        `json:"tax_rate" validate:"omitempty,min=0,max=100"`
	Currency       *string         `json:"currency" validate:"omitempty,len=3"`
	Timezone       *string         `json:"timezone"`
	EnabledModules []string        `json:"enabled_modules"`
	Settings       *map[string]any `json:"settings"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID             string         `json:"id"`
	OwnerUID       string         `json:"owner_uid"`
	BusinessName   string         `json:"business_name"`
	BusinessType   string         `json:"business_type"`
	Address        string         `json:"address,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	TaxNumber      string         `json:"tax_number,omitempty"`
	TaxRate        float64        `json:"tax_rate"`
	Currency       string         `json:"currency"`
	Timezone       string         `json:"timezone"`
	EnabledModules []string       `json:"enabled_modules"`
	Settings       map[string]any `json:"settings,omitempty"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

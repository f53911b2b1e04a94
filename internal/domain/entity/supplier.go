package entity

import "time"

// Supplier es un proveedor del negocio.
type Supplier struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"` // ej. "Net 30"
	Notes         string `json:"notes,omitempty"`
}

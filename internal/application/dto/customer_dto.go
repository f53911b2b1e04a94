package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para registrar un cliente.
type CreateCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// UpdateCustomerRequest entrada para actualizar un cliente. Los acumulados
// (puntos, gasto, visitas) no se editan por aquí: los mueve el POS.
type UpdateCustomerRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID            string          `json:"id"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	LoyaltyPoints int             `json:"loyalty_points"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	VisitCount    int             `json:"visit_count"`
	Notes         string          `json:"notes,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Data []CustomerResponse `json:"data"`
	Page PageMeta           `json:"page"`
}

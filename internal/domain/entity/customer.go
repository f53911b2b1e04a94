package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer es un cliente registrado del negocio (fidelización, historial).
type Customer struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	FullName      string          `json:"full_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	LoyaltyPoints int             `json:"loyalty_points"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	VisitCount    int             `json:"visit_count"`
	Notes         string          `json:"notes,omitempty"`
}

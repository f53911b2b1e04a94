package entity

import "time"

// Roles estándar de empleados. Un negocio puede definir roles propios,
// por eso Role es string y no un enum cerrado.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
)

// Permisos asignables a un empleado.
const (
	PermPOS       = "pos"
	PermInventory = "inventory"
	PermReports   = "reports"
	PermEmployees = "employees"
	PermSettings  = "settings"
)

// Employee es un empleado dentro de un negocio.
type Employee struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	UserUID     string   `json:"user_uid,omitempty"` // cuenta de acceso asociada, si la tiene
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	HourlyRate  float64  `json:"hourly_rate,omitempty"`
	Position    string   `json:"position,omitempty"`
	PinCode     string   `json:"pin_code,omitempty"` // login rápido en el POS
}

package dto

import "time"

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	FullName    string   `json:"full_name" validate:"required,min=1,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions"`
	HourlyRate  float64  `json:"hourly_rate" validate:"omitempty,min=0"`
	Position    string   `json:"position"`
	PinCode     string   `json:"pin_code" validate:"omitempty,len=4,numeric"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado. Campos nulos se
// dejan como están.
type UpdateEmployeeRequest struct {
	FullName    *string  `json:"full_name" validate:"omitempty,min=1,max=200"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone"`
	Role        *string  `json:"role"`
	Permissions []string `json:"permissions"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,min=0"`
	Position    *string  `json:"position"`
	PinCode     *string  `json:"pin_code" validate:"omitempty,len=4,numeric"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID          string    `json:"id"`
	UserUID     string    `json:"user_uid,omitempty"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	HourlyRate  float64   `json:"hourly_rate,omitempty"`
	Position    string    `json:"position,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Data []EmployeeResponse `json:"data"`
	Page PageMeta           `json:"page"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para registro/creación de usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=8"`
	Name     string           `json:"name" validate:"required,min=1,max=100"`
	Role     string           `json:"role" validate:"required,oneof=ceo admin storekeeper seller purchaser driver"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
}

// UpdateUserRequest entrada para PUT /users/:id. Campos opcionales.
type UpdateUserRequest struct {
	Email  string           `json:"email" validate:"omitempty,email"`
	Name   string           `json:"name" validate:"omitempty,min=1,max=100"`
	Salary *decimal.Decimal `json:"salary,omitempty"`
}

// ChangeRoleRequest entrada para PUT /users/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ceo admin storekeeper seller purchaser driver"`
}

// UpdateSalaryRequest entrada para PUT /users/:id/salary.
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      string           `json:"role"`
	Salary    *decimal.Decimal `json:"salary,omitempty"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

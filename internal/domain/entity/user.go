package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User (enumeración cerrada; la matriz de permisos se
// declara por ruta con RequireRole).
const (
	RoleCEO         = "ceo"
	RoleAdmin       = "admin"
	RoleStoreKeeper = "storekeeper"
	RoleSeller      = "seller"
	RolePurchaser   = "purchaser"
	RoleDriver      = "driver"
)

// AllRoles lista todos los roles válidos (para validación y broadcast de mensajes).
var AllRoles = []string{RoleCEO, RoleAdmin, RoleStoreKeeper, RoleSeller, RolePurchaser, RoleDriver}

// IsValidRole verifica que el rol pertenezca a la enumeración cerrada.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un empleado de la operación (CEO, bodeguero, vendedor, comprador, conductor).
// Los usuarios nunca se eliminan físicamente: se desactivan (IsActive=false) para que
// las referencias de las filas del libro contable no queden colgando.
type User struct {
	ID           string
	Email        string // único, almacenado en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Salary       *decimal.Decimal // nullable: no todos los empleados tienen salario fijo
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Package authz implementa la autorización por rol como una única tabla de
// políticas (operación × rol → permitido), consultada una vez por petición
// antes de cualquier lógica de dominio. Cada celda es membresía explícita,
// no una comparación de jerarquía numérica.
package authz

import "github.com/jhoicas/stock-control-api/internal/domain/entity"

// Operation identifica una operación autorizable.
type Operation string

const (
	OpViewCategories     Operation = "categories.view"
	OpCreateCategory     Operation = "categories.create"
	OpUpdateCategory     Operation = "categories.update"
	OpDeactivateCategory Operation = "categories.deactivate"

	OpViewSuppliers      Operation = "suppliers.view"
	OpCreateSupplier     Operation = "suppliers.create"
	OpUpdateSupplier     Operation = "suppliers.update"
	OpDeactivateSupplier Operation = "suppliers.deactivate"

	OpViewProducts      Operation = "products.view"
	OpCreateProduct     Operation = "products.create"
	OpUpdateProduct     Operation = "products.update"
	OpDeactivateProduct Operation = "products.deactivate"

	OpViewMovements  Operation = "movements.view"
	OpCreateMovement Operation = "movements.create"
	// Update y delete de movimientos existen en la tabla solo como negación
	// universal: el ledger es inmutable incluso para admin.
	OpUpdateMovement Operation = "movements.update"
	OpDeleteMovement Operation = "movements.delete"

	OpViewDashboard Operation = "dashboard.view"
	OpViewReports   Operation = "reports.view"

	OpRegisterUser   Operation = "users.register"
	OpDeactivateUser Operation = "users.deactivate"
)

var (
	everyone   = []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleOperator}
	managersUp = []entity.Role{entity.RoleAdmin, entity.RoleManager}
	adminOnly  = []entity.Role{entity.RoleAdmin}

	nobody []entity.Role
)

// policy es la tabla completa. Una operación ausente se niega.
var policy = map[Operation][]entity.Role{
	OpViewCategories:     everyone,
	OpCreateCategory:     managersUp,
	OpUpdateCategory:     managersUp,
	OpDeactivateCategory: adminOnly,

	OpViewSuppliers:      everyone,
	OpCreateSupplier:     managersUp,
	OpUpdateSupplier:     managersUp,
	OpDeactivateSupplier: adminOnly,

	OpViewProducts:      everyone,
	OpCreateProduct:     managersUp,
	OpUpdateProduct:     managersUp,
	OpDeactivateProduct: adminOnly,

	OpViewMovements:  everyone,
	OpCreateMovement: everyone,
	OpUpdateMovement: nobody,
	OpDeleteMovement: nobody,

	OpViewDashboard: everyone,
	OpViewReports:   everyone,

	OpRegisterUser:   adminOnly,
	OpDeactivateUser: adminOnly,
}

// Can evalúa la tabla para un rol. Roles desconocidos u operaciones no
// listadas se niegan.
func Can(role entity.Role, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// CanRoleName evalúa la tabla a partir del nombre del rol (claim JWT).
// Un caller no autenticado (rol vacío o inválido) se niega incondicionalmente.
func CanRoleName(roleName string, op Operation) bool {
	role, err := entity.ParseRole(roleName)
	if err != nil {
		return false
	}
	return Can(role, op)
}

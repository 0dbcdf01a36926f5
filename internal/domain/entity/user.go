package entity

import (
	"fmt"
	"time"
)

// Role rol de un usuario. Se persiste como SMALLINT con mapeo explícito.
type Role int

const (
	RoleAdmin    Role = 0
	RoleManager  Role = 1
	RoleOperator Role = 2
)

var roleNames = map[Role]string{
	RoleAdmin:    "admin",
	RoleManager:  "manager",
	RoleOperator: "operator",
}

// String devuelve el nombre expuesto en la API y en el claim JWT.
func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Valid indica si el valor está dentro del rango conocido.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole convierte el nombre API a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("rol desconocido: %q", s)
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string // mínimo 3 caracteres
	Email        string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         Role
	Active       bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Deleted indica si el usuario está marcado como eliminado.
func (u *User) Deleted() bool { return u.DeletedAt != nil }

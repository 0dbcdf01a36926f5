package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto de concurrencia, reintente la operación")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrIntegrity          = errors.New("el registro tiene dependencias y no puede eliminarse")
)

// ValidationError acumula errores por campo. Si hay campos inválidos no se
// persiste nada: la entidad se rechaza completa, nunca a medias.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError construye un ValidationError vacío listo para acumular.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add agrega un mensaje para un campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors indica si se acumuló al menos un error.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil devuelve el error solo si hay campos inválidos.
// Devolver e directamente estando vacío daría un error != nil por la interfaz.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error implementa error. Campos en orden estable para logs y tests.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("validación fallida: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, strings.Join(e.Fields[f], ", "))
	}
	return b.String()
}

// AsValidationError extrae el *ValidationError de err si lo es.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

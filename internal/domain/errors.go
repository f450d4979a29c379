package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError agrupa mensajes de validación por campo, listos para
// mostrarse junto a un formulario. Se construye completo antes de tocar la
// base de datos: una entrada inválida nunca llega a la capa de persistencia.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError crea un acumulador vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add registra un mensaje para un campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty indica si no se acumuló ningún fallo.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error resume los campos fallidos en orden estable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación fallida: " + strings.Join(fields, ", ")
}

package giveaway

import (
	"errors"
	"fmt"
)

// Rechazos de invariantes: siempre no-op con aviso al llamador, nunca un crash.
var (
	// ErrNotFound indica que no existe sorteo con ese ID de mensaje.
	ErrNotFound = errors.New("no existe un sorteo con ese ID")
	// ErrAlreadyEnded indica un intento de concluir un sorteo ya concluido sin force.
	ErrAlreadyEnded = errors.New("el sorteo ya terminó")
	// ErrNotEnded indica un reroll sobre un sorteo que aún no concluye.
	ErrNotEnded = errors.New("el sorteo aún no termina")
)

// ValidationError rechaza entrada malformada antes de mutar estado.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación de %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// AdapterError envuelve un fallo del transporte (fetch de entradas,
// publicación o edición del anuncio). La operación en curso se aborta sin
// persistencia parcial y puede reintentarse.
type AdapterError struct {
	Op  string
	Err error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adaptador %s: %v", e.Op, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

func newAdapterError(op string, err error) *AdapterError {
	return &AdapterError{Op: op, Err: err}
}

package helpers

import (
	"errors"
	"fmt"
	"net/http"
)

// Clases de error del servicio. Se consultan con errors.Is.
var (
	ErrValidacion   = errors.New("validación")
	ErrNoEncontrado = errors.New("no encontrado")
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
	// JSON indica que el mensaje se entrega como {"error": ...} en lugar de
	// texto plano.
	JSON bool
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// NoEncontrado construye el 404 de una entidad.
func NoEncontrado(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNoEncontrado)
}

// CampoRequerido construye el 400 estructurado de un campo faltante.
func CampoRequerido(campo string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("El campo %s es requerido.", campo),
		Err:     ErrValidacion,
		JSON:    true,
	}
}

// Invalido construye un 400 en texto plano.
func Invalido(message string, err error) *AppError {
	if err == nil {
		err = ErrValidacion
	} else {
		err = fmt.Errorf("%w: %w", ErrValidacion, err)
	}
	return NewAppError(http.StatusBadRequest, message, err)
}

// AsAppError convierte cualquier error en AppError con status 500 por defecto.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return NewAppError(http.StatusInternalServerError, msg, err)
}

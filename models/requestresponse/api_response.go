package requestresponse

// MessageDTO es la respuesta genérica de las operaciones que no devuelven
// el registro (actualizar y cambiar estado).
type MessageDTO struct {
	Message string `json:"message"`
}

// ErrorDTO es la respuesta estructurada de los errores de validación.
type ErrorDTO struct {
	Error string `json:"error"`
}

// NewMessage construye una respuesta exitosa sin datos.
func NewMessage(message string) MessageDTO {
	if message == "" {
		message = "OK"
	}
	return MessageDTO{Message: message}
}

// NewError construye una respuesta de error.
func NewError(message string) ErrorDTO {
	if message == "" {
		message = "Error"
	}
	return ErrorDTO{Error: message}
}

package apperr

import "errors"

// Sentinels base. Cada dominio define los suyos con Validation/NotFound
// (tutors.ErrNotFound, patients.ErrNotFound, ...) para que errors.Is funcione
// tanto con el sentinel del dominio como con el genérico.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Validation crea un error de validación con un mensaje apto para el cliente.
func Validation(msg string) error {
	return &kindError{msg: msg, kind: ErrValidation}
}

// NotFound crea un error "no encontrado" con un mensaje apto para el cliente.
func NotFound(msg string) error {
	return &kindError{msg: msg, kind: ErrNotFound}
}

// Message devuelve el texto a mostrar al cliente para errores conocidos.
// Para cualquier otro error (store, red) devuelve "".
func Message(err error) string {
	var k *kindError
	if errors.As(err, &k) {
		return k.msg
	}
	return ""
}

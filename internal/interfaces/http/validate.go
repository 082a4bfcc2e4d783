package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de DTOs (tags `validate:`).
// La validación ocurre en el handler, antes de invocar cualquier caso de uso.
var validate = validator.New()

// validationMessage convierte el primer error de validación en un mensaje
// corto mostrable al usuario.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("campo '%s' inválido (regla '%s')", fe.Field(), fe.Tag())
	}
	return "entrada inválida"
}

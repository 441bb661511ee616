package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de structs (tags `validate`).
var validate = validator.New()

// validateStruct corre las validaciones declarativas del DTO y devuelve los
// fallos como mensajes campo:regla, listos para el envelope de error.
func validateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: falla la regla '%s'", fe.Field(), fe.Tag()))
	}
	return msgs
}

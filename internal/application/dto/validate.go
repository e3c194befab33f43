package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los validadores de go-playground son seguros
// para uso concurrente una vez registrados.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida un request DTO contra sus tags `validate`. Devuelve un error
// con los campos rechazados, pensado para responder 400 directamente.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}

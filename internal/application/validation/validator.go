// Package validation valida los formularios del panel antes de cualquier llamada al backend.
// Los mensajes se indexan por el nombre del campo del formulario.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/autogestion/internal/application/dto"
	"github.com/jhoicas/autogestion/internal/domain"
	"github.com/jhoicas/autogestion/internal/domain/entity"
)

const (
	passwordMin = 8
	passwordMax = 20

	msgPasswordMin      = "La contraseña debe tener al menos 8 caracteres"
	msgPasswordMax      = "La contraseña no puede tener más de 20 caracteres"
	msgPasswordUpper    = "La contraseña debe contener al menos una letra mayúscula"
	msgPasswordLower    = "La contraseña debe contener al menos una letra minúscula"
	msgPasswordDigit    = "La contraseña debe contener al menos un número"
	msgPasswordSpecial  = "La contraseña debe contener al menos un carácter especial"
	msgPasswordMismatch = "Las contraseñas no coinciden. Por favor, verifica que ambas sean iguales"
	msgAtLeastOneField  = "Debe proporcionar al menos un campo para actualizar"
)

var (
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reLower   = regexp.MustCompile(`[a-z]`)
	reDigit   = regexp.MustCompile(`[0-9]`)
	reSpecial = regexp.MustCompile(`[!@#$%^&*]`)

	// now se reemplaza en tests para fijar el año máximo permitido.
	now = time.Now
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Los errores se reportan con el nombre del campo del formulario.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return PasswordIssue(fl.Field().String()) == ""
	})
	_ = validate.RegisterValidation("anio", func(fl validator.FieldLevel) bool {
		y := int(fl.Field().Int())
		return y >= 1900 && y <= now().Year()+2
	})
	_ = validate.RegisterValidation("estado_inventario", func(fl validator.FieldLevel) bool {
		return contains(entity.EstadosInventario, fl.Field().String())
	})
	_ = validate.RegisterValidation("tipo_adquisicion", func(fl validator.FieldLevel) bool {
		return contains(entity.TiposAdquisicion, fl.Field().String())
	})

	validate.RegisterStructValidation(updateUserRules, dto.UpdateUserRequest{})
}

// Errors errores de validación por campo (nombre del formulario → mensaje).
type Errors map[string]string

// Error implementa error con los mensajes ordenados por campo.
func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e Errors) Unwrap() error { return domain.ErrInvalidInput }

// Validate valida v. Devuelve nil o Errors.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := Errors{}
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = message(v, fe)
	}
	return out
}

// PasswordIssue devuelve el primer incumplimiento de la política de contraseñas, o "".
func PasswordIssue(p string) string {
	switch {
	case len(p) < passwordMin:
		return msgPasswordMin
	case len(p) > passwordMax:
		return msgPasswordMax
	case !reUpper.MatchString(p):
		return msgPasswordUpper
	case !reLower.MatchString(p):
		return msgPasswordLower
	case !reDigit.MatchString(p):
		return msgPasswordDigit
	case !reSpecial.MatchString(p):
		return msgPasswordSpecial
	}
	return ""
}

func updateUserRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(dto.UpdateUserRequest)
	if r.Empty() {
		sl.ReportError(r.Username, "_errors", "_errors", "at_least_one", "")
		return
	}
	if r.Password != nil {
		if r.ConfirmPassword == nil || *r.ConfirmPassword != *r.Password {
			sl.ReportError(r.ConfirmPassword, "confirmPassword", "ConfirmPassword", "eqfield", "Password")
		}
	}
}

// fieldKey ruta del campo sin el nombre del struct raíz ("adquisicion.tipo_adquisicion").
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(root any, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo requerido"
	case "email":
		return "El correo ingresado no es válido"
	case "eqfield":
		return msgPasswordMismatch
	case "at_least_one":
		return msgAtLeastOneField
	case "password":
		s, _ := fe.Value().(string)
		if p, ok := fe.Value().(*string); ok && p != nil {
			s = *p
		}
		return PasswordIssue(s)
	case "datetime":
		return "Fecha inválida (use AAAA-MM-DD)"
	case "anio":
		return fmt.Sprintf("El año debe estar entre 1900 y %d", now().Year()+2)
	case "estado_inventario":
		return "Estado de inventario inválido"
	case "tipo_adquisicion":
		return "Tipo de adquisición inválido"
	case "oneof":
		return "Valor no permitido (opciones: " + fe.Param() + ")"
	case "gt", "gte":
		if fe.Kind() == reflect.String {
			return "Debe tener al menos " + fe.Param() + " caracteres"
		}
		return "Debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "Debe ser menor o igual a " + fe.Param()
	case "min":
		if _, ok := root.(*dto.LoginRequest); ok && fe.Field() == "password" {
			return "La contraseña no es válida"
		}
		return "Debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "No puede tener más de " + fe.Param() + " caracteres"
	}
	return "Valor inválido"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

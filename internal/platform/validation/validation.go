// Package validation hace los checks de presencia sobre los request structs
// (tag `validate:"required"`), reportando el nombre JSON del campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describe el primer campo que no pasó validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return "missing field: " + e.Field
	case "max":
		return fmt.Sprintf("field too long: %s (max %s characters)", e.Field, e.Param)
	}
	return fmt.Sprintf("invalid field: %s (%s)", e.Field, e.Tag)
}

func get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Reportar el nombre JSON (o form) en vez del nombre Go.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
	return validate
}

// Struct valida s y devuelve *FieldError (el primero, en orden de declaración).
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}
	return err
}

// MaxLen aplica `max=n` (en caracteres, no bytes) a un valor suelto; los
// Service lo usan para respetar el largo de las columnas VARCHAR.
func MaxLen(field, value string, n int) error {
	param := strconv.Itoa(n)
	if err := get().Var(value, "max="+param); err != nil {
		return &FieldError{Field: field, Tag: "max", Param: param}
	}
	return nil
}

// Package forms implements the create/edit form pattern: client-side
// schema validation before any network call, server conflict responses
// mapped back onto the field that caused them, and everything else
// surfaced as a retryable notice that leaves the form populated.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps form field names to one message each. The "_" key
// carries failures that have no single field target.
type FieldErrors map[string]string

// Any reports whether at least one field failed.
func (fe FieldErrors) Any() bool { return len(fe) > 0 }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form tag name, the key the UI knows.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return fld.Name
		}
		return tag
	})

	if err := v.RegisterValidation("price", validPrice); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(productFlagsExclusive, ProductForm{})

	return v
}

// Validate runs the schema checks and converts failures into a
// field→message map. A nil return means the form may be submitted.
func Validate(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	out := FieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageFor(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "Dados do formulário inválidos."
	return out
}

func messageFor(tag, param string) string {
	switch tag {
	case "required":
		return "Este campo é obrigatório."
	case "email":
		return "Informe um e-mail válido."
	case "hexcolor":
		return "Informe uma cor hexadecimal válida."
	case "price":
		return "O preço deve ser maior que zero."
	case "min":
		return "Adicione pelo menos " + param + " item(ns)."
	case "max":
		return "No máximo " + param + " item(ns)."
	case "len":
		return "Deve ter exatamente " + param + " caracteres."
	case "featured_or_archived":
		return "Selecione pelo menos uma opção: Destaque ou Arquivado."
	case "featured_and_archived":
		return "Não é possível selecionar Destaque e Arquivado simultaneamente."
	default:
		return "Valor inválido."
	}
}

// productFlagsExclusive enforces the product invariant: exactly one of
// featured/archived is set. Neither blames the featured field, both
// blames the archived one.
func productFlagsExclusive(sl validator.StructLevel) {
	form := sl.Current().Interface().(ProductForm)

	if !form.IsFeatured && !form.IsArchived {
		sl.ReportError(form.IsFeatured, "isFeatured", "IsFeatured", "featured_or_archived", "")
	}
	if form.IsFeatured && form.IsArchived {
		sl.ReportError(form.IsArchived, "isArchived", "IsArchived", "featured_and_archived", "")
	}
}

func validPrice(fl validator.FieldLevel) bool {
	_, err := ParsePrice(fl.Field().String())
	return err == nil
}

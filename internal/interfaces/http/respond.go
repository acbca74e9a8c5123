package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/malkitsweets/invoicing-api/internal/application/dto"
	"github.com/malkitsweets/invoicing-api/internal/domain"
	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
)

// validate instancia compartida del validador con las reglas del dominio
// registradas. Los errores se reportan con el nombre JSON del campo.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("vendor_email", func(fl validator.FieldLevel) bool {
		return entity.ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("invoice_date", func(fl validator.FieldLevel) bool {
		return entity.ValidDate(fl.Field().String())
	})
	return v
}

// checkRequest valida el DTO y convierte el primer fallo en un
// domain.ErrInvalidInput con mensaje descriptivo para el cliente.
func checkRequest(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeFieldError(verrs[0]))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must not be empty"
	case "vendor_email":
		return fe.Field() + " must be a valid email address"
	case "invoice_date":
		return fe.Field() + " must be a MM/DD/YYYY date"
	}
	return fe.Field() + " is invalid"
}

// respondError mapea el error al contrato HTTP: entrada inválida 400, no
// encontrado 404 y cualquier otro fallo 500 con el texto del error tal cual.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

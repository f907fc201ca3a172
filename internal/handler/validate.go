package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is shared across handlers; validator.Validate is safe for
// concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names in validation errors rather than Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldError is one entry in a 422 validation response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindAndValidate binds the JSON body into req and runs struct validation.
// On failure it writes the error response itself and reports false, so
// callers bail out with `return nil`. Validation rejects the request
// before any store access or mutation.
func bindAndValidate(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		return false
	}
	err := validate.Struct(req)
	if err == nil {
		return true
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		return false
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	_ = c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": out})
	return false
}

// messageFor maps a validator tag to a stable, human-readable message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "terms_accepted" {
			return "terms must be accepted"
		}
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "eqfield":
		return "passwords do not match"
	default:
		return "is invalid"
	}
}

package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	// username: letters, digits, hyphens only. Input is trimmed and
	// lowercased before matching; services store the same normalized form,
	// so mixed-case input is accepted here and canonicalized downstream.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		normalized := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		return usernamePattern.MatchString(normalized)
	})
	return v
}

// DecodeJSONBody strictly decodes the request body into dest and runs the
// struct validators. Unknown fields are rejected so write operations only
// accept allow-listed attributes.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "username":
		return "must contain only lowercase letters, digits, and hyphens"
	}
	return "is invalid"
}

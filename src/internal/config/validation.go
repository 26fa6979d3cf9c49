package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "color":
		return "must be a color: #rrggbb, rgb(r, g, b) or a palette name"
	case "line_placeholder":
		return fmt.Sprintf("must contain exactly one {{%s}} placeholder", sink.LineTag)
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // The severity section the error belongs to (e.g., "error"), if any
	FieldPath string // Dot-notation field path (e.g., "error.webhook.0.format")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("color", validateColor); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("line_placeholder", validateLinePlaceholder); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: color accepted by color.Parse
func validateColor(fl validator.FieldLevel) bool {
	_, err := color.Parse(fl.Field().String())
	return err == nil
}

// Custom validator: webhook body with exactly one {{line}}
func validateLinePlaceholder(fl validator.FieldLevel) bool {
	return sink.CountPlaceholders(fl.Field().String()) == 1
}

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "", "")...)
	}

	for i, section := range c.Levels() {
		if section == nil {
			continue
		}
		validationErrors = append(validationErrors, validateLevel(severity.All[i].String(), section)...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func validateLevel(name string, section *LevelConfig) ValidationErrors {
	var validationErrors ValidationErrors

	if err := validate.Struct(section); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, name, name)...)
	}

	for j, hook := range section.Webhooks {
		prefix := fmt.Sprintf("%s.webhook.%d", name, j)
		if hook == nil {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  name,
				FieldPath: prefix,
				Message:   "webhook cannot be empty",
			})
			continue
		}

		if err := validate.Struct(hook); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, prefix, name)...)
		}

		for key := range hook.Headers {
			if key == "" {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  name,
					FieldPath: prefix + ".headers",
					Message:   "header name cannot be empty",
				})
			}
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

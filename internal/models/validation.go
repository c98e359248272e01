package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SightingInput carries the user-editable fields of a sighting
type SightingInput struct {
	CommonName     string             `validate:"required,max=200"`
	ScientificName string             `validate:"max=200"`
	Status         ConservationStatus `validate:"omitempty,conservation_status"`
	Location       string             `validate:"required,max=200"`
}

// Normalize trims surrounding whitespace from every field and canonicalises
// a recognised status spelling
func (in SightingInput) Normalize() SightingInput {
	out := SightingInput{
		CommonName:     strings.TrimSpace(in.CommonName),
		ScientificName: strings.TrimSpace(in.ScientificName),
		Status:         ConservationStatus(strings.TrimSpace(string(in.Status))),
		Location:       strings.TrimSpace(in.Location),
	}
	if status, ok := ParseStatus(string(out.Status)); ok {
		out.Status = status
	}
	return out
}

// ValidationError lists every problem found in a SightingInput
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("conservation_status", func(fl validator.FieldLevel) bool {
		return ConservationStatus(fl.Field().String()).IsKnown()
	})
	return v
}

var fieldLabels = map[string]string{
	"CommonName":     "Common Name",
	"ScientificName": "Scientific Name",
	"Status":         "Conservation Status",
	"Location":       "Location",
}

// Validate checks in and returns a *ValidationError when it is unusable
func (in SightingInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate sighting: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		label := fieldLabels[fe.Field()]
		switch fe.Tag() {
		case "required":
			problems = append(problems, label+" is required")
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters", label, fe.Param()))
		case "conservation_status":
			problems = append(problems, fmt.Sprintf("%s must be one of %s", label, strings.Join(StatusLabels(), ", ")))
		default:
			problems = append(problems, label+" is invalid")
		}
	}
	return &ValidationError{Problems: problems}
}

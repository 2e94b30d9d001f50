// Package types provides type definitions for structured data used throughout the placement-prep system.
package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FinalSubmission holds the three links required to ship: the project
// workspace, the repository, and the live deployment. Each field is
// validated independently as a well-formed URL; empty fields are allowed
// here and gated separately at ship time.
type FinalSubmission struct {
	Lovable string `json:"lovable" validate:"omitempty,url"`
	GitHub  string `json:"github" validate:"omitempty,url"`
	Deploy  string `json:"deploy" validate:"omitempty,url"`
}

// Validate validates the FinalSubmission using the validator.
func (s *FinalSubmission) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// FieldErrors returns a per-field validation message for every link that is
// present but not a well-formed URL. An empty map means all present links
// are valid.
func (s *FinalSubmission) FieldErrors() map[string]string {
	fieldErrors := make(map[string]string)
	err := s.Validate()
	if err == nil {
		return fieldErrors
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Validator failed for a non-field reason; attribute nothing.
		return fieldErrors
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Lovable":
			fieldErrors["lovable"] = "Invalid URL format"
		case "GitHub":
			fieldErrors["github"] = "Invalid URL format"
		case "Deploy":
			fieldErrors["deploy"] = "Invalid URL format"
		}
	}
	return fieldErrors
}

// Complete reports whether all three links are present.
func (s *FinalSubmission) Complete() bool {
	return s.Lovable != "" && s.GitHub != "" && s.Deploy != ""
}

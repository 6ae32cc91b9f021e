package taxonomy

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/company-directory/internal/domain"
)

const maxNameLength = 255

// CreateInput holds the parameters for creating an activity.
type CreateInput struct {
	Name     string
	ParentID *int64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, i.Name)
	if i.ParentID != nil && *i.ParentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial activity update.
// ParentID is applied only when SetParent is true; nil then makes the activity a root.
type UpdateInput struct {
	ID        int64
	Name      *string
	SetParent bool
	ParentID  *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.Name == nil && !i.SetParent {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.SetParent && i.ParentID != nil {
		switch {
		case *i.ParentID <= 0:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be positive"})
		case *i.ParentID == i.ID:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "activity cannot be its own parent"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	return errs
}

package building

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/company-directory/internal/domain"
)

const maxAddressLength = 500

// CreateInput holds the parameters for creating a building.
type CreateInput struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendAddressErrors(errs, i.Address)
	errs = appendLatitudeErrors(errs, i.Latitude)
	errs = appendLongitudeErrors(errs, i.Longitude)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial building update. Nil fields are left unchanged.
type UpdateInput struct {
	ID        int64
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.Address == nil && i.Latitude == nil && i.Longitude == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Address != nil {
		errs = appendAddressErrors(errs, *i.Address)
	}
	if i.Latitude != nil {
		errs = appendLatitudeErrors(errs, *i.Latitude)
	}
	if i.Longitude != nil {
		errs = appendLongitudeErrors(errs, *i.Longitude)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendAddressErrors(errs []domain.FieldError, address string) []domain.FieldError {
	address = strings.TrimSpace(address)
	if address == "" {
		return append(errs, domain.FieldError{Field: "address", Message: "required"})
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return append(errs, domain.FieldError{Field: "address", Message: "max 500 characters"})
	}
	return errs
}

func appendLatitudeErrors(errs []domain.FieldError, lat float64) []domain.FieldError {
	if lat < -90 || lat > 90 {
		return append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	return errs
}

func appendLongitudeErrors(errs []domain.FieldError, lng float64) []domain.FieldError {
	if lng < -180 || lng > 180 {
		return append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return errs
}

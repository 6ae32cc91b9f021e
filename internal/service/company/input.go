package company

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/company-directory/internal/domain"
)

const (
	maxNameLength  = 255
	maxPhoneLength = 50
	maxPhones      = 50
	maxActivityIDs = 100
)

// CreateInput holds the parameters for creating a company.
type CreateInput struct {
	Name         string
	BuildingID   int64
	PhoneNumbers []string
	ActivityIDs  []int64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, i.Name)
	if i.BuildingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "building_id", Message: "must be positive"})
	}
	errs = appendPhoneErrors(errs, i.PhoneNumbers)
	errs = appendActivityIDErrors(errs, i.ActivityIDs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial company update.
// A nil field is left unchanged. A non-nil empty list clears the collection.
type UpdateInput struct {
	ID           int64
	Name         *string
	BuildingID   *int64
	PhoneNumbers *[]string
	ActivityIDs  *[]int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.BuildingID != nil && *i.BuildingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "building_id", Message: "must be positive"})
	}
	if i.PhoneNumbers != nil {
		errs = appendPhoneErrors(errs, *i.PhoneNumbers)
	}
	if i.ActivityIDs != nil {
		errs = appendActivityIDErrors(errs, *i.ActivityIDs)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RadiusQuery selects companies whose building lies within RadiusKm of the center.
type RadiusQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Validate checks all fields and collects all errors.
func (q RadiusQuery) Validate() error {
	var errs []domain.FieldError

	errs = appendCoordinateErrors(errs, "lat", q.Latitude, 90)
	errs = appendCoordinateErrors(errs, "lng", q.Longitude, 180)
	// Zero is valid: the boundary is inclusive, so it matches buildings at the center.
	if !(q.RadiusKm >= 0) || math.IsInf(q.RadiusKm, 1) {
		errs = append(errs, domain.FieldError{Field: "radius", Message: "must be a finite number >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RectangleQuery selects companies whose building lies inside the box.
// Edges are inclusive and longitudes do not wrap around the antimeridian.
type RectangleQuery struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// Validate checks all fields and collects all errors.
func (q RectangleQuery) Validate() error {
	var errs []domain.FieldError

	errs = appendCoordinateErrors(errs, "lat_min", q.LatMin, 90)
	errs = appendCoordinateErrors(errs, "lat_max", q.LatMax, 90)
	errs = appendCoordinateErrors(errs, "lng_min", q.LngMin, 180)
	errs = appendCoordinateErrors(errs, "lng_max", q.LngMax, 180)
	if q.LatMin > q.LatMax {
		errs = append(errs, domain.FieldError{Field: "lat_min", Message: "must not exceed lat_max"})
	}
	if q.LngMin > q.LngMax {
		errs = append(errs, domain.FieldError{Field: "lng_min", Message: "must not exceed lng_max"})
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

func appendPhoneErrors(errs []domain.FieldError, phones []string) []domain.FieldError {
	if len(phones) > maxPhones {
		return append(errs, domain.FieldError{Field: "phone_numbers", Message: "max 50 items"})
	}
	for i, p := range phones {
		field := fmt.Sprintf("phone_numbers[%d]", i)
		p = domain.NormalizePhone(p)
		if p == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		} else if utf8.RuneCountInString(p) > maxPhoneLength {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 50 characters"})
		}
	}
	return errs
}

func appendActivityIDErrors(errs []domain.FieldError, ids []int64) []domain.FieldError {
	if len(ids) > maxActivityIDs {
		return append(errs, domain.FieldError{Field: "activity_ids", Message: "max 100 items"})
	}
	for i, id := range ids {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("activity_ids[%d]", i), Message: "must be positive"})
		}
	}
	return errs
}

func appendCoordinateErrors(errs []domain.FieldError, field string, v, limit float64) []domain.FieldError {
	// Written so that NaN fails too.
	if !(v >= -limit && v <= limit) {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("must be between %g and %g", -limit, limit)})
	}
	return errs
}

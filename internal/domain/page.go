package domain

// Page holds offset pagination parameters.
type Page struct {
	Skip  int
	Limit int
}

// Validate checks that the page is well formed. Upper limits are applied by the caller.
func (p Page) Validate() error {
	var errs []FieldError
	if p.Skip < 0 {
		errs = append(errs, FieldError{Field: "skip", Message: "must be >= 0"})
	}
	if p.Limit < 1 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be >= 1"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

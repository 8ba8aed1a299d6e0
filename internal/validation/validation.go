package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

// FieldError names a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of field-level problems for one form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid order form: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so errors match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"customerName":       "Name must be at least 2 characters",
	"customerEmail":      "Invalid email address",
	"customerPhone":      "Phone number must be at least 10 characters",
	"customerAddress":    "Address must be at least 5 characters",
	"customerCity":       "City must be at least 2 characters",
	"customerPostalCode": "Postal code must be at least 3 characters",
}

// ValidateOrderForm checks the checkout form against the contact/delivery
// rules. It is pure and synchronous; on failure it returns a
// *ValidationError listing every invalid field. A nil return means the form
// is safe to hand to the order service.
func ValidateOrderForm(form *domain.OrderForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator only returns other error types for unvalidatable input
		return &ValidationError{Fields: []FieldError{{Field: "orderForm", Message: "Invalid order form"}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", fe.Field())
		}
		fields = append(fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return &ValidationError{Fields: fields}
}

package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Product holds the fields of a new product.
type Product struct {
	Name        string `validate:"required,max=31"`
	Description string `validate:"required,max=254"`
	Stock       int    `validate:"gte=0"`
	Price       int    `validate:"gte=0"`
}

// Patch holds the fields to change on Edit. Nil fields keep the last record's value.
type Patch struct {
	Name        *string `validate:"omitempty,min=1,max=31"`
	Description *string `validate:"omitempty,max=254"`
	Stock       *int    `validate:"omitempty,gte=0"`
	Price       *int    `validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Stock == nil && p.Price == nil
}

func validateInput(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

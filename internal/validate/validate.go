package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	// Money and ids are validated through their scalar form so rules like
	// gt=0 and required apply to them.
	val.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		return d.InexactFloat64()
	}, decimal.Decimal{})

	val.RegisterCustomTypeFunc(func(f reflect.Value) any {
		id, ok := f.Interface().(uuid.UUID)
		if !ok || id == uuid.Nil {
			return ""
		}

		return id.String()
	}, uuid.UUID{})

	return val
}

// Violation describes one rejected field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of validating a request body.
type Result struct {
	Violations []Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a valid result and a VALIDATION_ERROR listing the
// violations otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}

	return apperr.New(apperr.CodeValidation).WithData(map[string]any{"errors": r.Violations})
}

// Struct validates s against its `validate` tags.
func Struct(s any) Result {
	err := v.Struct(s)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Violations: []Violation{{Rule: "invalid", Message: err.Error()}}}
	}

	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return Result{Violations: out}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid uuid", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

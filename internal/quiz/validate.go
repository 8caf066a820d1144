package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyQuiz     = errors.New("quiz has no questions")
	ErrInvalidQuiz   = errors.New("invalid quiz")
	ErrInvalidOption = errors.New("option must be between 1 and 4")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors read like the wire format
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the quiz shape. It fails on the first question that is
// missing one of its four options instead of letting a renderer drop a button.
func (q Quiz) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidQuiz, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidQuiz, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Quiz.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "max":
		return field + " must be between 1 and 4"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

package authform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/lateslip-portal/internal/domain"
)

// validate is shared; it caches struct metadata.
var validate = validator.New()

// Policy decides whether a submission may be sent to the backend.
type Policy interface {
	Check(s Submission) error
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(s Submission) error

func (f PolicyFunc) Check(s Submission) error { return f(s) }

// NoValidation lets every submission through, empty fields included.
func NoValidation() Policy {
	return PolicyFunc(func(Submission) error { return nil })
}

// RequiredFields rejects submissions with an empty field. Errors wrap
// domain.ErrMissingFields.
func RequiredFields() Policy {
	return PolicyFunc(func(s Submission) error {
		err := validate.Struct(s)
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate submission: %w", err)
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("%w: %s", domain.ErrMissingFields, strings.Join(missing, ", "))
	})
}

// Custom wraps a caller-supplied predicate.
func Custom(fn func(s Submission) error) Policy {
	return PolicyFunc(fn)
}

// PolicyByName resolves the configured policy name ("none" or "required").
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", "none":
		return NoValidation(), nil
	case "required":
		return RequiredFields(), nil
	default:
		return nil, fmt.Errorf("unknown validation policy %q", name)
	}
}

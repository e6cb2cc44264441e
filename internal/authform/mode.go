package authform

import (
	"fmt"

	"github.com/nfrund/lateslip-portal/internal/domain"
)

// Mode selects which of the two forms is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegistration
)

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeRegistration:
		return "registration"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SubmitLabel is the text on the submit button.
func (m Mode) SubmitLabel() string {
	if m == ModeLogin {
		return "Login"
	}
	return "Sign Up"
}

// SiblingPrompt is the question shown next to the link to the other form.
func (m Mode) SiblingPrompt() string {
	if m == ModeLogin {
		return "Don't have an account?"
	}
	return "Have an Account?"
}

// SiblingLabel is the text of the link to the other form.
func (m Mode) SiblingLabel() string {
	if m == ModeLogin {
		return "Sign Up"
	}
	return "Login"
}

// SiblingPath is the route of the other form.
func (m Mode) SiblingPath() string {
	if m == ModeLogin {
		return domain.PathSignUp
	}
	return domain.PathLogin
}

// Path is the canonical route of this form.
func (m Mode) Path() string {
	if m == ModeLogin {
		return domain.PathLogin
	}
	return domain.PathSignUp
}

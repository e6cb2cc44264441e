package auth

import (
	"github.com/nfrund/lateslip-portal/internal/authform"
)

// FormData is the View Model (DTO) for the login and sign-up pages.
type FormData struct {
	Form *authform.Form
}

// DashboardData is passed to the dashboard placeholder.
type DashboardData struct {
	HasToken bool
	// Role is the unverified "role" claim of the token, when it is a JWT.
	Role string
}

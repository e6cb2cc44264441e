package pages

import (
	"github.com/nfrund/lateslip-portal/internal/view/dto/auth"
	"github.com/nfrund/lateslip-portal/web/src/templates/components"
	g "maragu.dev/gomponents"
)

const (
	LoginTitle  = "Login"
	SignUpTitle = "Sign Up"
)

// LoginContent is the body of the login page.
func LoginContent(data auth.FormData) g.Node {
	return components.AuthForm(data.Form)
}

// SignUpContent is the body of the registration page.
func SignUpContent(data auth.FormData) g.Node {
	return components.AuthForm(data.Form)
}

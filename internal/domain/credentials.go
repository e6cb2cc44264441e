package domain

// LoginCredentials is what the login form submits.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationCredentials is what the sign-up form submits. The backend
// calls the username "fullname".
type RegistrationCredentials struct {
	Username string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenKey is the key the session token is stored under.
const TokenKey = "token"

// Application routes.
const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathSignUp         = "/signUp"
	PathAdminDashboard = "/adminDashboard"
)

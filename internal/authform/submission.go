package authform

// Submission is what a form produces when the user submits it. It is either
// a LoginSubmission or a RegistrationSubmission.
type Submission interface {
	Mode() Mode
	isSubmission()
}

// LoginSubmission carries the login tuple (email, password).
type LoginSubmission struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (LoginSubmission) Mode() Mode    { return ModeLogin }
func (LoginSubmission) isSubmission() {}

// RegistrationSubmission carries the sign-up tuple (username, email, password).
type RegistrationSubmission struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (RegistrationSubmission) Mode() Mode    { return ModeRegistration }
func (RegistrationSubmission) isSubmission() {}

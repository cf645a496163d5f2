package auth

// LoginData is the view model for the login form.
type LoginData struct {
	// Email pre-fills the email field after a failed attempt.
	Email string
	// Error is the message shown above the form, if any.
	Error string
}

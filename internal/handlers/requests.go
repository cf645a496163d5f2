package handlers

// LoginRequest is the login form submission. Both fields are forwarded as
// typed; the external API decides whether they are acceptable.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

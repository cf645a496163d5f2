package domain

// Credentials are the login form values exactly as the user typed them.
// No format validation is applied; the upstream API is the authority.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

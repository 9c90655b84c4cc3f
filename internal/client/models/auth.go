package models

// LoginTypeAdmin is the fixed discriminator sent with every login request.
const LoginTypeAdmin = "admin"

// LoginStatusSuccess is the status value the backend uses for a granted login.
const LoginStatusSuccess = 1

// Credentials are built per login attempt and dropped after submission.
type Credentials struct {
	Identifier string
	Secret     string
}

// LoginRequest is the wire body of the admin login call.
type LoginRequest struct {
	Field    string `json:"field"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

// LoginResponse is the admin login reply.
type LoginResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Succeeded reports whether the backend granted the login.
func (r *LoginResponse) Succeeded() bool {
	return r != nil && r.Status == LoginStatusSuccess
}

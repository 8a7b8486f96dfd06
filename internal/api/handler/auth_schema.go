package handler

// messageResponse is the trivial acknowledgement body.
type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=20"`
	Email    string   `json:"email"    validate:"required,email,max=50"`
	Password string   `json:"password" validate:"required,min=6,max=40"`
	Roles    []string `json:"role"     validate:"omitempty,dive,oneof=user seller admin"`
}

type signinRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userInfoResponse describes the authenticated account. The session token
// itself travels only in the cookie, never in the body.
type userInfoResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
}

package dto

// RegisterRequest payload for new citizens.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	NIC            string `json:"nic"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. The password hash is never
// part of it.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	NIC   string `json:"nic"`
	Role  string `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

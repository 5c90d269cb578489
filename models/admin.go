package models

type Admin struct {
	AdminID  string `json:"AdminId"`
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

package models

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username" validate:"required_without=Email,omitempty,min=3,max=32"`
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Identifier is either the username or the email; login tries both.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

type UpdateRoleRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Role string `json:"role" validate:"required"`
}

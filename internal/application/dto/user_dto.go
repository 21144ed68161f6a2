package dto

import "time"

// RegisterRequest cuerpo de POST /auth/register.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=30,alpha_es"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Password     string `json:"password" validate:"required,min=8,has_digit,has_lower,has_upper,has_special"`
	BusinessName string `json:"businessName" validate:"omitempty,max=100"`
}

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse perfil público del usuario. Nunca incluye el password.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

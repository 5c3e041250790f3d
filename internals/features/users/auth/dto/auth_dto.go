package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name      string     `json:"name" validate:"required,min=3,max=100"`
	Genre     string     `json:"genre" validate:"omitempty,oneof=M F"`
	Birthdate *time.Time `json:"birthdate"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type MeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Genre     string     `json:"genre,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	PhotoURL  *string    `json:"photo_url,omitempty"`
	Level     *int       `json:"authorization_level,omitempty"`
}

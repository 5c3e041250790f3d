package dto

import "time"

type StudentRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Genre     string     `json:"genre" validate:"omitempty,oneof=M F"`
	Birthdate *time.Time `json:"birthdate"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"omitempty,min=8"`
}

type UpdateProfileRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Genre     string     `json:"genre" validate:"omitempty,oneof=M F"`
	Birthdate *time.Time `json:"birthdate"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

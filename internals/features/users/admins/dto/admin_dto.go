package dto

import "time"

type AdminRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Genre     string     `json:"genre" validate:"omitempty,oneof=M F"`
	Birthdate *time.Time `json:"birthdate"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"omitempty,min=8"`
	Level     int        `json:"level" validate:"min=0,max=2"`
}

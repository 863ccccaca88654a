package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=255"`
	LastName    string `json:"last_name" validate:"required,min=1,max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Address     string `json:"address" validate:"omitempty"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other 'Prefer not to say'"`
}

// UpdatePatientRequest uses pointer fields so only keys present in the JSON
// body are applied (patch semantics, not full replace).
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty"`
	Address     *string `json:"address" validate:"omitempty"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
}

// Response DTOs

type PatientResponse struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Address     string    `json:"address,omitempty"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}

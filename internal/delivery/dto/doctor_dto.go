package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=255"`
	LastName       string `json:"last_name" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,max=20"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
}

type UpdateDoctorRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=20"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	LicenseNumber  *string `json:"license_number" validate:"omitempty,max=50"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"license_number"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}

package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,gte=1"`
	DoctorID        int    `json:"doctor_id" validate:"required,gte=1"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason" validate:"omitempty"`
	Status          string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

type UpdateAppointmentRequest struct {
	AppointmentTime *string `json:"appointment_time" validate:"omitempty"`
	Reason          *string `json:"reason" validate:"omitempty"`
	Status          *string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	DoctorID        int       `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}

package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment links a patient and a doctor at a point in time.
// Both foreign keys are required and validated against existing rows
// before insert.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	AppointmentTime time.Time         `gorm:"not null" json:"appointment_time"`
	Reason          string            `gorm:"type:text" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

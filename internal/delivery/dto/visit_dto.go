package dto

import "time"

// Request DTOs

type CreateVisitRequest struct {
	PatientID int    `json:"patient_id" validate:"required,gte=1"`
	DoctorID  *int   `json:"doctor_id" validate:"omitempty,gte=1"`
	VisitDate string `json:"visit_date" validate:"omitempty"`

	ChiefComplaint string `json:"chief_complaint" validate:"omitempty"`
	ClinicalNotes  string `json:"clinical_notes" validate:"omitempty"`

	BloodPressure   string `json:"blood_pressure" validate:"omitempty,max=20"`
	Temperature     string `json:"temperature" validate:"omitempty,max=20"`
	PulseRate       *int   `json:"pulse_rate" validate:"omitempty,gte=0"`
	RespirationRate *int   `json:"respiration_rate" validate:"omitempty,gte=0"`
	WeightKg        string `json:"weight_kg" validate:"omitempty,max=20"`
	HeightCm        string `json:"height_cm" validate:"omitempty,max=20"`

	Diagnosis            string `json:"diagnosis" validate:"omitempty"`
	Treatment            string `json:"treatment" validate:"omitempty"`
	ProceduresPerformed  string `json:"procedures_performed" validate:"omitempty"`
	Prescriptions        string `json:"prescriptions" validate:"omitempty"`
	FollowUpInstructions string `json:"follow_up_instructions" validate:"omitempty"`
	NextAppointmentDate  string `json:"next_appointment_date" validate:"omitempty"`
}

// UpdateVisitRequest patches only the fields present in the request body.
type UpdateVisitRequest struct {
	DoctorID  *int    `json:"doctor_id" validate:"omitempty,gte=1"`
	VisitDate *string `json:"visit_date" validate:"omitempty"`

	ChiefComplaint *string `json:"chief_complaint" validate:"omitempty"`
	ClinicalNotes  *string `json:"clinical_notes" validate:"omitempty"`

	BloodPressure   *string `json:"blood_pressure" validate:"omitempty,max=20"`
	Temperature     *string `json:"temperature" validate:"omitempty,max=20"`
	PulseRate       *int    `json:"pulse_rate" validate:"omitempty,gte=0"`
	RespirationRate *int    `json:"respiration_rate" validate:"omitempty,gte=0"`
	WeightKg        *string `json:"weight_kg" validate:"omitempty,max=20"`
	HeightCm        *string `json:"height_cm" validate:"omitempty,max=20"`

	Diagnosis            *string `json:"diagnosis" validate:"omitempty"`
	Treatment            *string `json:"treatment" validate:"omitempty"`
	ProceduresPerformed  *string `json:"procedures_performed" validate:"omitempty"`
	Prescriptions        *string `json:"prescriptions" validate:"omitempty"`
	FollowUpInstructions *string `json:"follow_up_instructions" validate:"omitempty"`
	NextAppointmentDate  *string `json:"next_appointment_date" validate:"omitempty"`
}

// Response DTOs

type VisitResponse struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  *int      `json:"doctor_id,omitempty"`
	VisitDate time.Time `json:"visit_date"`

	ChiefComplaint string `json:"chief_complaint,omitempty"`
	ClinicalNotes  string `json:"clinical_notes,omitempty"`

	BloodPressure   string `json:"blood_pressure,omitempty"`
	Temperature     string `json:"temperature,omitempty"`
	PulseRate       *int   `json:"pulse_rate,omitempty"`
	RespirationRate *int   `json:"respiration_rate,omitempty"`
	WeightKg        string `json:"weight_kg,omitempty"`
	HeightCm        string `json:"height_cm,omitempty"`

	Diagnosis            string `json:"diagnosis,omitempty"`
	Treatment            string `json:"treatment,omitempty"`
	ProceduresPerformed  string `json:"procedures_performed,omitempty"`
	Prescriptions        string `json:"prescriptions,omitempty"`
	FollowUpInstructions string `json:"follow_up_instructions,omitempty"`
	NextAppointmentDate  string `json:"next_appointment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int64           `json:"total"`
}

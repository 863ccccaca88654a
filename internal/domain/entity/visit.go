package entity

import "time"

// Visit is a clinical encounter record (EHR entry). A visit always belongs
// to exactly one patient; doctor attribution is optional so walk-in and
// unassigned visits stay valid.
type Visit struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	DoctorID  *int      `gorm:"index" json:"doctor_id,omitempty"`
	VisitDate time.Time `gorm:"not null" json:"visit_date"`

	ChiefComplaint string `gorm:"type:text" json:"chief_complaint,omitempty"`
	ClinicalNotes  string `gorm:"type:text" json:"clinical_notes,omitempty"`

	// Vital signs, all optional
	BloodPressure   string `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	Temperature     string `gorm:"type:varchar(20)" json:"temperature,omitempty"`
	PulseRate       *int   `json:"pulse_rate,omitempty"`
	RespirationRate *int   `json:"respiration_rate,omitempty"`
	WeightKg        string `gorm:"type:varchar(20)" json:"weight_kg,omitempty"`
	HeightCm        string `gorm:"type:varchar(20)" json:"height_cm,omitempty"`

	Diagnosis            string     `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment            string     `gorm:"type:text" json:"treatment,omitempty"`
	ProceduresPerformed  string     `gorm:"type:text" json:"procedures_performed,omitempty"`
	Prescriptions        string     `gorm:"type:text" json:"prescriptions,omitempty"`
	FollowUpInstructions string     `gorm:"type:text" json:"follow_up_instructions,omitempty"`
	NextAppointmentDate  *time.Time `gorm:"type:date" json:"next_appointment_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Visit) TableName() string {
	return "patient_visits"
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-hospital-management/internal/chatbot"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	chatbotListLimit = 10

	chatbotAccessDenied = "Access denied. You are not authorized to use the chatbot for patient information."
	chatbotFallback     = "I'm sorry, I couldn't understand that query. Please try rephrasing or ask about patient ID, doctor ID, appointments, or patient visit history."
	chatbotGreeting     = "Hello! How can I assist you with patient information today?"
)

// ChatbotUsecase answers free-text queries about patients, doctors,
// appointments, and visit history. It never returns an error to the caller:
// lookup failures, missing ids, and unauthorized intents all come back as
// chatbot text, the same way a conversational assistant would phrase them.
type ChatbotUsecase interface {
	Query(ctx context.Context, role, query string) string
}

type chatbotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	visitRepo       repository.VisitRepository
}

func NewChatbotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
) ChatbotUsecase {
	return &chatbotUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
	}
}

func (u *chatbotUsecase) Query(ctx context.Context, role, query string) string {
	// The route is already policy-gated; this guard keeps the usecase safe
	// when called from anywhere else.
	if role != entity.RoleAdmin && role != entity.RoleDoctor {
		return chatbotAccessDenied
	}

	db := u.db
	if db != nil {
		db = db.WithContext(ctx)
	}

	switch chatbot.Classify(query) {
	case chatbot.IntentPatientDetails:
		return u.patientDetails(db, query)
	case chatbot.IntentListPatients:
		return u.listPatients(db, role)
	case chatbot.IntentDoctorDetails:
		return u.doctorDetails(db, query)
	case chatbot.IntentListDoctors:
		return u.listDoctors(db, role)
	case chatbot.IntentPatientAppointments:
		return u.patientAppointments(db, query)
	case chatbot.IntentPatientVisitHistory:
		return u.patientVisitHistory(db, query)
	case chatbot.IntentGreeting:
		return chatbotGreeting
	default:
		return chatbotFallback
	}
}

func (u *chatbotUsecase) patientDetails(db *gorm.DB, query string) string {
	id, ok := chatbot.ExtractID(query)
	if !ok {
		return "Please specify a patient ID (e.g., 'What are the details for patient ID 1?')."
	}

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find patient: %+v", err)
		return "An error occurred while fetching patient details."
	}
	if patient == nil {
		return fmt.Sprintf("Patient with ID %d not found.", id)
	}

	return fmt.Sprintf(
		"Patient ID: %d\nName: %s %s\nEmail: %s\nPhone: %s\nDate of Birth: %s\nAddress: %s\nGender: %s",
		patient.ID,
		patient.FirstName, patient.LastName,
		patient.Email,
		patient.PhoneNumber,
		patient.DateOfBirth.Format(dateLayout),
		patient.Address,
		patient.Gender,
	)
}

func (u *chatbotUsecase) listPatients(db *gorm.DB, role string) string {
	if role != entity.RoleAdmin {
		return "You are not authorized to list all patients."
	}

	patients, _, err := u.patientRepo.FindAll(db, 0, chatbotListLimit)
	if err != nil {
		u.log.Warnf("Chatbot failed to list patients: %+v", err)
		return "An error occurred while fetching patients."
	}
	if len(patients) == 0 {
		return "No patients found in the system."
	}

	lines := make([]string, len(patients))
	for i, p := range patients {
		lines[i] = fmt.Sprintf("- %s %s (ID: %d, Email: %s)", p.FirstName, p.LastName, p.ID, p.Email)
	}
	return "Here are some patients:\n" + strings.Join(lines, "\n")
}

func (u *chatbotUsecase) doctorDetails(db *gorm.DB, query string) string {
	id, ok := chatbot.ExtractID(query)
	if !ok {
		return "Please specify a doctor ID (e.g., 'What are the details for doctor ID 1?')."
	}

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find doctor: %+v", err)
		return "An error occurred while fetching doctor details."
	}
	if doctor == nil {
		return fmt.Sprintf("Doctor with ID %d not found.", id)
	}

	return fmt.Sprintf(
		"Doctor ID: %d\nName: %s %s\nEmail: %s\nSpecialization: %s\nPhone: %s\nLicense: %s",
		doctor.ID,
		doctor.FirstName, doctor.LastName,
		doctor.Email,
		doctor.Specialization,
		doctor.PhoneNumber,
		doctor.LicenseNumber,
	)
}

func (u *chatbotUsecase) listDoctors(db *gorm.DB, role string) string {
	if role != entity.RoleAdmin {
		return "You are not authorized to list all doctors."
	}

	doctors, _, err := u.doctorRepo.FindAll(db, 0, chatbotListLimit)
	if err != nil {
		u.log.Warnf("Chatbot failed to list doctors: %+v", err)
		return "An error occurred while fetching doctors."
	}
	if len(doctors) == 0 {
		return "No doctors found in the system."
	}

	lines := make([]string, len(doctors))
	for i, d := range doctors {
		lines[i] = fmt.Sprintf("- %s %s (ID: %d, Spec: %s)", d.FirstName, d.LastName, d.ID, d.Specialization)
	}
	return "Here are some doctors:\n" + strings.Join(lines, "\n")
}

func (u *chatbotUsecase) patientAppointments(db *gorm.DB, query string) string {
	id, ok := chatbot.ExtractID(query)
	if !ok {
		return "Please specify a patient ID for appointments (e.g., 'Show appointments for patient ID 1')."
	}

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find patient: %+v", err)
		return "An error occurred while fetching appointments."
	}
	if patient == nil {
		return fmt.Sprintf("Patient with ID %d not found.", id)
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find appointments: %+v", err)
		return "An error occurred while fetching appointments."
	}
	if len(appointments) == 0 {
		return fmt.Sprintf("No appointments found for Patient ID %d.", id)
	}

	lines := make([]string, len(appointments))
	for i, a := range appointments {
		lines[i] = fmt.Sprintf(
			"- Appt ID: %d, Doctor: %s, Time: %s, Reason: %s, Status: %s",
			a.ID,
			u.doctorName(db, a.DoctorID),
			a.AppointmentTime.Format("2006-01-02 15:04"),
			a.Reason,
			a.Status,
		)
	}
	return fmt.Sprintf("Appointments for Patient %s %s (ID: %d):\n", patient.FirstName, patient.LastName, id) + strings.Join(lines, "\n")
}

func (u *chatbotUsecase) patientVisitHistory(db *gorm.DB, query string) string {
	id, ok := chatbot.ExtractID(query)
	if !ok {
		return "Please specify a patient ID for visit history (e.g., 'Show medical records for patient ID 1')."
	}

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find patient: %+v", err)
		return "An error occurred while fetching visit history."
	}
	if patient == nil {
		return fmt.Sprintf("Patient with ID %d not found.", id)
	}

	visits, err := u.visitRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Chatbot failed to find visits: %+v", err)
		return "An error occurred while fetching visit history."
	}
	if len(visits) == 0 {
		return fmt.Sprintf("No visit history found for Patient ID %d.", id)
	}

	summaries := make([]string, len(visits))
	for i, v := range visits {
		doctorName := "N/A"
		if v.DoctorID != nil {
			doctorName = u.doctorName(db, *v.DoctorID)
		}
		summaries[i] = fmt.Sprintf(
			"- Visit ID: %d, Date: %s, Doctor: %s\n  Chief Complaint: %s\n  Diagnosis: %s\n  Treatment: %s",
			v.ID,
			v.VisitDate.Format("2006-01-02 15:04"),
			doctorName,
			orNA(v.ChiefComplaint),
			orNA(v.Diagnosis),
			orNA(v.Treatment),
		)
	}
	return fmt.Sprintf("Visit history for Patient %s %s (ID: %d):\n", patient.FirstName, patient.LastName, id) + strings.Join(summaries, "\n\n")
}

func (u *chatbotUsecase) doctorName(db *gorm.DB, doctorID int) string {
	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil || doctor == nil {
		return "N/A"
	}
	return doctor.FirstName + " " + doctor.LastName
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		Email:       patient.Email,
		PhoneNumber: patient.PhoneNumber,
		DateOfBirth: patient.DateOfBirth.Format(dateLayout),
		Address:     patient.Address,
		Gender:      patient.Gender,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

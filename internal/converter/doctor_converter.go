package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Email:          doctor.Email,
		PhoneNumber:    doctor.PhoneNumber,
		Specialization: doctor.Specialization,
		LicenseNumber:  doctor.LicenseNumber,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to response DTO
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	resp := &dto.VisitResponse{
		ID:                   visit.ID,
		PatientID:            visit.PatientID,
		DoctorID:             visit.DoctorID,
		VisitDate:            visit.VisitDate,
		ChiefComplaint:       visit.ChiefComplaint,
		ClinicalNotes:        visit.ClinicalNotes,
		BloodPressure:        visit.BloodPressure,
		Temperature:          visit.Temperature,
		PulseRate:            visit.PulseRate,
		RespirationRate:      visit.RespirationRate,
		WeightKg:             visit.WeightKg,
		HeightCm:             visit.HeightCm,
		Diagnosis:            visit.Diagnosis,
		Treatment:            visit.Treatment,
		ProceduresPerformed:  visit.ProceduresPerformed,
		Prescriptions:        visit.Prescriptions,
		FollowUpInstructions: visit.FollowUpInstructions,
		CreatedAt:            visit.CreatedAt,
		UpdatedAt:            visit.UpdatedAt,
	}
	if visit.NextAppointmentDate != nil {
		resp.NextAppointmentDate = visit.NextAppointmentDate.Format(dateLayout)
	}
	return resp
}

// VisitsToResponses converts a slice of Visit entities to response DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}

package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.CreateVisit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid visit date, use RFC3339", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid next appointment date, use YYYY-MM-DD", nil)
		case usecase.ErrVisitPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrVisitDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.visitUsecase.GetVisit(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to fetch visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit fetched successfully", visit)
}

func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	visits, err := h.visitUsecase.ListVisits(r.Context(), offset, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch visits")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Visits fetched successfully", visits.Visits, &response.Meta{
		Offset: offset,
		Limit:  limit,
		Total:  visits.Total,
	})
}

func (h *VisitHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	visits, err := h.visitUsecase.ListVisitsByPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to fetch visits")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visits fetched successfully", visits)
}

func (h *VisitHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	visits, err := h.visitUsecase.ListVisitsByDoctor(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to fetch visits")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visits fetched successfully", visits)
}

func (h *VisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.UpdateVisit(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid visit date, use RFC3339", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid next appointment date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	if err := h.visitUsecase.DeleteVisit(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to delete visit")
		}
		return
	}

	response.NoContent(w)
}

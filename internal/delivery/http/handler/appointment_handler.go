package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment time, use RFC3339", nil)
		case usecase.ErrAppointmentPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to fetch appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment fetched successfully", appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), offset, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments fetched successfully", appointments.Appointments, &response.Meta{
		Offset: offset,
		Limit:  limit,
		Total:  appointments.Total,
	})
}

func (h *AppointmentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointmentsByPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to fetch appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments fetched successfully", appointments)
}

func (h *AppointmentHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointmentsByDoctor(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to fetch appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments fetched successfully", appointments)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment time, use RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.NoContent(w)
}

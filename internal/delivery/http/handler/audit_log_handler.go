package handler

import (
	"net/http"
	"strconv"

	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), offset, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs fetched successfully", logs.Logs, &response.Meta{
		Offset: offset,
		Limit:  limit,
		Total:  logs.Total,
	})
}

func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAuditLogNotFound:
			response.NotFound(w, "Audit log not found")
		default:
			response.InternalServerError(w, "Failed to fetch audit log")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit log fetched successfully", auditLog)
}

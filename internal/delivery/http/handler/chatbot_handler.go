package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type ChatbotHandler struct {
	chatbotUsecase usecase.ChatbotUsecase
	validator      *validator.CustomValidator
}

func NewChatbotHandler(chatbotUsecase usecase.ChatbotUsecase, validator *validator.CustomValidator) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotUsecase: chatbotUsecase,
		validator:      validator,
	}
}

func (h *ChatbotHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatbotQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Role information not found")
		return
	}

	// The chatbot never errors: unknown queries and missing rows come back
	// as conversational text with a 200.
	answer := h.chatbotUsecase.Query(r.Context(), role, req.Query)

	response.Success(w, http.StatusOK, "Query answered", &dto.ChatbotResponse{Response: answer})
}

package dto

// Request DTOs

type ChatbotQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// Response DTOs

type ChatbotResponse struct {
	Response string `json:"response"`
}

package dto

type ChatRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Message string   `json:"message"`
	Options []string `json:"options,omitempty"`
}

type ResetResponse struct {
	SessionId string `json:"sessionId"`
	Message   string `json:"message"`
}

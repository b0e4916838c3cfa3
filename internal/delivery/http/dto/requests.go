package dto

// ChatRequest needs a message key; an empty string is a valid message.
type ChatRequest struct {
	Message *string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

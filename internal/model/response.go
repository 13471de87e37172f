package model

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope shared by every endpoint
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success builds a success envelope
func Success(message string, data any) APIResponse {
	return APIResponse{Status: StatusSuccess, Message: message, Data: data}
}

// Error builds an error envelope
func Error(message string) APIResponse {
	return APIResponse{Status: StatusError, Message: message}
}

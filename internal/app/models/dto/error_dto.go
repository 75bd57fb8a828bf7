package dto

// ValidationErrorResponse is the wire shape for all 400 responses carrying an
// ordered message list.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewValidationErrorResponse creates a validation error response
func NewValidationErrorResponse(messages []string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}

// MessageResponse is the wire shape for not-found and forbidden responses
type MessageResponse struct {
	Msg string `json:"msg"`
}

// AuthErrorResponse is the wire shape for 401 responses. The message is
// always the same generic text so that failure causes are never
// distinguishable externally.
type AuthErrorResponse struct {
	Message string `json:"message"`
}

// AccessDenied is the generic body for every authentication failure
var AccessDenied = AuthErrorResponse{Message: "Access Denied"}

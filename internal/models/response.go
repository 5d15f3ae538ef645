package models

// ErrorResponse is the stable error envelope returned by every failing
// endpoint
type ErrorResponse struct {
	ErrorType        string            `json:"errorType"`
	ErrorMessage     string            `json:"errorMessage"`
	Errors           []string          `json:"errors"`
	ErrorsValidation map[string]string `json:"errorsValidation"`
}

// NewErrorResponse builds the envelope for an error. Structured errors
// carry their own type and message; anything else degrades to a generic
// internal error so driver details never reach clients.
func NewErrorResponse(err error) (int, ErrorResponse) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Status, ErrorResponse{
			ErrorType:    string(appErr.Type),
			ErrorMessage: appErr.Message,
		}
	}
	internal := NewStorageError("internal server error", err)
	return internal.Status, ErrorResponse{
		ErrorType:    string(internal.Type),
		ErrorMessage: internal.Message,
	}
}

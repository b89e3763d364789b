package dto

// Error codes surfaced in the error envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeBusinessRule = "BUSINESS_RULE_ERROR"
	CodeStorage      = "STORAGE_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse is the envelope for every error reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Package response defines the JSON envelope returned by every API endpoint.
package response

import "hackathon_backend/internal/shared/apperr"

// GlobalResponse is the uniform envelope. Data is set on success,
// ErrorCode on failure.
type GlobalResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message"`
}

// Success builds a successful envelope.
func Success(data any, message string) GlobalResponse {
	return GlobalResponse{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope from an error code.
func Fail(code apperr.ErrorCode) GlobalResponse {
	return GlobalResponse{Success: false, ErrorCode: code.Code, Message: code.Message}
}

// FailWithMessage builds a failure envelope with a custom message,
// e.g. the first field error of a validation failure.
func FailWithMessage(code apperr.ErrorCode, message string) GlobalResponse {
	return GlobalResponse{Success: false, ErrorCode: code.Code, Message: message}
}

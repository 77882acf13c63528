// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response from the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple informational response.
type MessageResponse struct {
	Message string `json:"message"`
}

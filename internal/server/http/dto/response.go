package dto

// Response is the envelope used by every API endpoint.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

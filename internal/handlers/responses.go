package handlers

// ErrorResponse is the common error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the common informational payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable outcome
	Message string `json:"message"`
}

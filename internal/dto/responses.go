package dto

// ErrorResponse is the standard alert-style failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the standard success body.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

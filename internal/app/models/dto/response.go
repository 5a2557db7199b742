package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a successful envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse carries a collection together with its size
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total" example:"10"`
}

// HealthResponse reports liveness and the storage transport in use
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Storage   string `json:"storage" example:"file"`
	Clients   int    `json:"clients" example:"2"`
	Students  int    `json:"students" example:"10"`
	Courses   int    `json:"courses" example:"10"`
	StorageOK bool   `json:"storageOk" example:"true"`
}

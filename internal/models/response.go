package models

// APIResponse is the uniform success/failure envelope returned by every
// endpoint. Data is present on success, Error on failure.
type APIResponse struct {
	Status string        `json:"status"`
	Data   interface{}   `json:"data,omitempty"`
	Error  *ErrorMessage `json:"error,omitempty"`
}

// ErrorMessage carries the failure label and its description
type ErrorMessage struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// Envelope status values
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Success wraps a payload in a success envelope
func Success(data interface{}) APIResponse {
	return APIResponse{Status: StatusSuccess, Data: data}
}

// Failed wraps an error label and description in a failure envelope
func Failed(label, description string) APIResponse {
	return APIResponse{
		Status: StatusFailed,
		Error:  &ErrorMessage{Error: label, Description: description},
	}
}

package models

import (
	"errors"
	"net/http"
)

// ServiceError is a domain error raised by the service layer. It carries
// the HTTP status to surface and a caller-facing message. Anything that is
// not a ServiceError is treated as an unanticipated internal failure.
type ServiceError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error code constants used as the "error" label in failure envelopes
const (
	ErrBadRequest     = "BAD_REQUEST"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrNotFound       = "NOT_FOUND"
	ErrConflict       = "CONFLICT"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a ServiceError with an explicit HTTP status
func NewServiceError(status int, message string) *ServiceError {
	return &ServiceError{Status: status, Message: message}
}

// NewBadRequest creates a 400 ServiceError
func NewBadRequest(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}

// NewUnauthorized creates a 401 ServiceError
func NewUnauthorized(message string) *ServiceError {
	return NewServiceError(http.StatusUnauthorized, message)
}

// NewNotFound creates a 404 ServiceError
func NewNotFound(message string) *ServiceError {
	return NewServiceError(http.StatusNotFound, message)
}

// NewConflict creates a 409 ServiceError
func NewConflict(message string) *ServiceError {
	return NewServiceError(http.StatusConflict, message)
}

// AsServiceError unwraps err into a ServiceError if it is one
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Package httperr defines the error taxonomy for upstream service calls.
// Handlers pick response codes with errors.As against these types; nothing
// is retried automatically.
package httperr

import "fmt"

// NetworkError means the request could not be sent or the response could
// not be read. The upstream service may or may not have seen the request.
type NetworkError struct {
	Service string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s service unreachable: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServiceError is a non-2xx response from an upstream service.
type ServiceError struct {
	Service string
	Status  int
	Body    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service error: status %d, body: %s", e.Service, e.Status, e.Body)
}

// AuthError is a 401 from an upstream service: the bearer credential is
// missing, invalid, or expired. The session holding it must be cleared.
type AuthError struct {
	Service string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s service rejected credentials", e.Service)
}

// ValidationError is a client-side input rejection raised before any
// upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

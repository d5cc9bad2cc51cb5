package service

import "fmt"

// ServiceError wraps an error with the service operation that failed.
type ServiceError struct {
	// Service is the service name, e.g. "article".
	Service string
	// Operation is the operation that failed, e.g. "list_articles".
	Operation string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func wrap(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}

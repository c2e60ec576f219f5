package apperrors

import "fmt"

// ValidationError marks user-correctable input problems. Field names the
// offending input where one exists.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError marks a reference to an entity that does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NewNotFound builds a NotFoundError for the named entity ("Donation", "Event", ...).
func NewNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// StorageError wraps a failed datastore call.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorage wraps err as a StorageError for operation op.
func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// ExternalServiceError wraps a failed identity-provider or object-storage call.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// NewExternal wraps err as an ExternalServiceError for the named service.
func NewExternal(service string, err error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Err: err}
}

package esconfig

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/private/protocol"
)

// ErrDuplicateKey is matched (via errors.Is) by every error returned from
// an Add*Entry method when the key is already present.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError is returned by Add*Entry methods when a value is
// already stored under Key. It is a programming error: the map is left
// untouched.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicated keys (%s) are provided.", e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) hold.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// addEntry stores value under key in *m, creating the map if needed.
func addEntry[V any](m *map[string]V, key string, value V) error {
	if *m == nil {
		*m = make(map[string]V)
	}
	if _, ok := (*m)[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	(*m)[key] = value
	return nil
}

const (
	// ErrCodeAccessDeniedException for service response error code
	// "AccessDeniedException".
	//
	// An error occurred because user does not have permissions to access the
	// resource. Returns HTTP status code 403.
	ErrCodeAccessDeniedException = "AccessDeniedException"

	// ErrCodeBaseException for service response error code
	// "BaseException".
	//
	// An error occurred while processing the request.
	ErrCodeBaseException = "BaseException"

	// ErrCodeConflictException for service response error code
	// "ConflictException".
	//
	// An error occurred because the client attempts to remove a resource that is
	// currently in use. Returns HTTP status code 409.
	ErrCodeConflictException = "ConflictException"

	// ErrCodeDisabledOperationException for service response error code
	// "DisabledOperationException".
	//
	// An error occured because the client wanted to access a not supported operation.
	// Gives http status code of 409.
	ErrCodeDisabledOperationException = "DisabledOperationException"

	// ErrCodeInternalException for service response error code
	// "InternalException".
	//
	// The request processing has failed because of an unknown error, exception
	// or failure (the failure is internal to the service) . Gives http status code
	// of 500.
	ErrCodeInternalException = "InternalException"

	// ErrCodeInvalidTypeException for service response error code
	// "InvalidTypeException".
	//
	// An exception for trying to create or access sub-resource that is either
	// invalid or not supported. Gives http status code of 409.
	ErrCodeInvalidTypeException = "InvalidTypeException"

	// ErrCodeLimitExceededException for service response error code
	// "LimitExceededException".
	//
	// An exception for trying to create more than allowed resources or sub-resources.
	// Gives http status code of 409.
	ErrCodeLimitExceededException = "LimitExceededException"

	// ErrCodeResourceAlreadyExistsException for service response error code
	// "ResourceAlreadyExistsException".
	//
	// An exception for creating a resource that already exists. Gives http status
	// code of 400.
	ErrCodeResourceAlreadyExistsException = "ResourceAlreadyExistsException"

	// ErrCodeResourceNotFoundException for service response error code
	// "ResourceNotFoundException".
	//
	// An exception for accessing or deleting a resource that does not exist. Gives
	// http status code of 400.
	ErrCodeResourceNotFoundException = "ResourceNotFoundException"

	// ErrCodeValidationException for service response error code
	// "ValidationException".
	//
	// An exception for missing / invalid input fields. Gives http status code of
	// 400.
	ErrCodeValidationException = "ValidationException"
)

var exceptionFromCode = map[string]func(protocol.ResponseMetadata) error{
	ErrCodeAccessDeniedException:          newErrorAccessDeniedException,
	ErrCodeBaseException:                  newErrorBaseException,
	ErrCodeConflictException:              newErrorConflictException,
	ErrCodeDisabledOperationException:     newErrorDisabledOperationException,
	ErrCodeInternalException:              newErrorInternalException,
	ErrCodeInvalidTypeException:           newErrorInvalidTypeException,
	ErrCodeLimitExceededException:         newErrorLimitExceededException,
	ErrCodeResourceAlreadyExistsException: newErrorResourceAlreadyExistsException,
	ErrCodeResourceNotFoundException:      newErrorResourceNotFoundException,
	ErrCodeValidationException:            newErrorValidationException,
}

// exceptionMessage renders the Error() string shared by all service exceptions.
func exceptionMessage(code string, msg *string) string {
	if msg == nil {
		return code
	}
	return fmt.Sprintf("%s: %s", code, *msg)
}

// messageValue returns the message text or "".
func messageValue(msg *string) string {
	if msg == nil {
		return ""
	}
	return *msg
}

// AccessDeniedException is returned when the caller lacks permission
// to access the resource.
type AccessDeniedException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorAccessDeniedException(v protocol.ResponseMetadata) error {
	return &AccessDeniedException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *AccessDeniedException) Code() string { return ErrCodeAccessDeniedException }

// Message returns the exception's message.
func (s *AccessDeniedException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *AccessDeniedException) OrigErr() error { return nil }

func (s *AccessDeniedException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *AccessDeniedException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *AccessDeniedException) RequestID() string { return s.RespMetadata.RequestID }

// BaseException is the generic error returned while processing a request.
type BaseException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorBaseException(v protocol.ResponseMetadata) error {
	return &BaseException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *BaseException) Code() string { return ErrCodeBaseException }

// Message returns the exception's message.
func (s *BaseException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *BaseException) OrigErr() error { return nil }

func (s *BaseException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *BaseException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *BaseException) RequestID() string { return s.RespMetadata.RequestID }

// ConflictException is returned when removing a resource that is still in use.
type ConflictException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorConflictException(v protocol.ResponseMetadata) error {
	return &ConflictException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *ConflictException) Code() string { return ErrCodeConflictException }

// Message returns the exception's message.
func (s *ConflictException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *ConflictException) OrigErr() error { return nil }

func (s *ConflictException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *ConflictException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *ConflictException) RequestID() string { return s.RespMetadata.RequestID }

// DisabledOperationException is returned for operations not supported
// for the account or domain.
type DisabledOperationException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorDisabledOperationException(v protocol.ResponseMetadata) error {
	return &DisabledOperationException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *DisabledOperationException) Code() string { return ErrCodeDisabledOperationException }

// Message returns the exception's message.
func (s *DisabledOperationException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *DisabledOperationException) OrigErr() error { return nil }

func (s *DisabledOperationException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *DisabledOperationException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *DisabledOperationException) RequestID() string { return s.RespMetadata.RequestID }

// InternalException is returned when the service fails for an internal reason.
type InternalException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorInternalException(v protocol.ResponseMetadata) error {
	return &InternalException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *InternalException) Code() string { return ErrCodeInternalException }

// Message returns the exception's message.
func (s *InternalException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *InternalException) OrigErr() error { return nil }

func (s *InternalException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *InternalException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *InternalException) RequestID() string { return s.RespMetadata.RequestID }

// InvalidTypeException is returned when accessing an unsupported sub-resource.
type InvalidTypeException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorInvalidTypeException(v protocol.ResponseMetadata) error {
	return &InvalidTypeException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *InvalidTypeException) Code() string { return ErrCodeInvalidTypeException }

// Message returns the exception's message.
func (s *InvalidTypeException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *InvalidTypeException) OrigErr() error { return nil }

func (s *InvalidTypeException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *InvalidTypeException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *InvalidTypeException) RequestID() string { return s.RespMetadata.RequestID }

// LimitExceededException is returned when creating more resources than allowed.
type LimitExceededException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorLimitExceededException(v protocol.ResponseMetadata) error {
	return &LimitExceededException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *LimitExceededException) Code() string { return ErrCodeLimitExceededException }

// Message returns the exception's message.
func (s *LimitExceededException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *LimitExceededException) OrigErr() error { return nil }

func (s *LimitExceededException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *LimitExceededException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *LimitExceededException) RequestID() string { return s.RespMetadata.RequestID }

// ResourceAlreadyExistsException is returned when creating a resource
// that already exists.
type ResourceAlreadyExistsException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorResourceAlreadyExistsException(v protocol.ResponseMetadata) error {
	return &ResourceAlreadyExistsException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *ResourceAlreadyExistsException) Code() string {
	return ErrCodeResourceAlreadyExistsException
}

// Message returns the exception's message.
func (s *ResourceAlreadyExistsException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *ResourceAlreadyExistsException) OrigErr() error { return nil }

func (s *ResourceAlreadyExistsException) Error() string {
	return exceptionMessage(s.Code(), s.Message_)
}

// StatusCode returns the HTTP status code for the request's response error.
func (s *ResourceAlreadyExistsException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *ResourceAlreadyExistsException) RequestID() string { return s.RespMetadata.RequestID }

// ResourceNotFoundException is returned when accessing or deleting a
// resource that does not exist.
type ResourceNotFoundException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorResourceNotFoundException(v protocol.ResponseMetadata) error {
	return &ResourceNotFoundException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *ResourceNotFoundException) Code() string { return ErrCodeResourceNotFoundException }

// Message returns the exception's message.
func (s *ResourceNotFoundException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *ResourceNotFoundException) OrigErr() error { return nil }

func (s *ResourceNotFoundException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *ResourceNotFoundException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *ResourceNotFoundException) RequestID() string { return s.RespMetadata.RequestID }

// ValidationException is returned for missing or invalid input fields.
type ValidationException struct {
	_            struct{}                  `type:"structure"`
	RespMetadata protocol.ResponseMetadata `json:"-" xml:"-"`

	Message_ *string `locationName:"message" type:"string"`
}

func newErrorValidationException(v protocol.ResponseMetadata) error {
	return &ValidationException{RespMetadata: v}
}

// Code returns the exception type name.
func (s *ValidationException) Code() string { return ErrCodeValidationException }

// Message returns the exception's message.
func (s *ValidationException) Message() string { return messageValue(s.Message_) }

// OrigErr always returns nil, satisfies awserr.Error interface.
func (s *ValidationException) OrigErr() error { return nil }

func (s *ValidationException) Error() string { return exceptionMessage(s.Code(), s.Message_) }

// StatusCode returns the HTTP status code for the request's response error.
func (s *ValidationException) StatusCode() int { return s.RespMetadata.StatusCode }

// RequestID returns the service's response RequestID for request.
func (s *ValidationException) RequestID() string { return s.RespMetadata.RequestID }

package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// InsufficientSubscription returns a new Failure for users whose subscription
// tier does not cover the requested operation.
func InsufficientSubscription(tier string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("subscription tier %q does not allow this operation", tier),
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// IncompleteRequest returns a new Failure for an event request that is missing
// required fields after extraction. The missing field names are part of the
// message so callers can surface them directly.
func IncompleteRequest(missing ...string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: "cannot check availability, missing: " + strings.Join(missing, ", "),
	}
}

// CapacityExceeded returns a new Failure for a headcount above a room capacity.
func CapacityExceeded(room string, capacity, headcount int) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("room %q capacity %d is below requested headcount %d", room, capacity, headcount),
	}
}

// UnsupportedFileFormat returns a new Failure for import/export formats the
// ledger does not recognize.
func UnsupportedFileFormat(format string) error {
	return &Failure{
		Code:    http.StatusUnsupportedMediaType,
		Message: fmt.Sprintf("unsupported file format %q", format),
	}
}

// ExternalService returns a new Failure for a failed or timed-out call to an
// external collaborator (translation, classification, generation).
func ExternalService(service string, err error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: fmt.Sprintf("%s service failed: %v", service, err),
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

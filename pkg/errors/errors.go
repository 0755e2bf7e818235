package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeInternal            = "INTERNAL_ERROR"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidFare         = "INVALID_FARE"
	CodeInsufficientSeats   = "INSUFFICIENT_SEATS"
	CodeOverCancellation    = "OVER_CANCELLATION"
	CodeCategoryNotFound    = "CATEGORY_NOT_IN_BOOKING"
	CodeNotOwner            = "NOT_OWNER"
	CodeInventoryCorruption = "INVENTORY_CORRUPTION"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NotFoundWithID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// InvalidFare rejects a negative base fare before any pricing happens.
func InvalidFare(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidFare,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InsufficientSeats(trainID string, requested, available int) *AppError {
	return &AppError{
		Code:       CodeInsufficientSeats,
		Message:    fmt.Sprintf("not enough seats on train %s", trainID),
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"train_id":  trainID,
			"requested": requested,
			"available": available,
		},
	}
}

func OverCancellation(category string, requested, active int) *AppError {
	return &AppError{
		Code:       CodeOverCancellation,
		Message:    fmt.Sprintf("cannot cancel %d %s tickets, only %d active", requested, category, active),
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"category":  category,
			"requested": requested,
			"active":    active,
		},
	}
}

// NotOwner rejects an operation on a booking that belongs to somebody else.
// The message deliberately omits who does own it.
func NotOwner(bookingID int64) *AppError {
	return &AppError{
		Code:       CodeNotOwner,
		Message:    "booking belongs to a different user",
		HTTPStatus: http.StatusForbidden,
		Details: map[string]any{
			"booking_id": bookingID,
		},
	}
}

func CategoryNotInBooking(category string, bookingID int64) *AppError {
	return &AppError{
		Code:       CodeCategoryNotFound,
		Message:    fmt.Sprintf("booking has no %s tickets", category),
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"category":   category,
			"booking_id": bookingID,
		},
	}
}

// InventoryCorruption flags a seat-count invariant violation. It is never
// expected in correct operation; the detecting operation must abort instead
// of proceeding with inconsistent state.
func InventoryCorruption(trainID string, message string) *AppError {
	return &AppError{
		Code:       CodeInventoryCorruption,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Details: map[string]any{
			"train_id": trainID,
		},
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

func HasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

package validator

import (
	"fmt"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/model"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates booking and cancellation payloads before they
// reach the reservation engine.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("passenger_counts", validatePassengerCounts); err != nil {
		return nil, fmt.Errorf("failed to register passenger_counts validation: %w", err)
	}

	return &RequestValidator{validate: v}, nil
}

// validatePassengerCounts accepts a category->quantity map where every
// category is known, no quantity is negative, and at least one quantity is
// positive. Zero-quantity entries are tolerated and ignored downstream.
func validatePassengerCounts(fl validator.FieldLevel) bool {
	passengers, ok := fl.Field().Interface().(map[model.PassengerCategory]int)
	if !ok || len(passengers) == 0 {
		return false
	}

	anyPositive := false
	for category, quantity := range passengers {
		if !category.Valid() {
			return false
		}
		if quantity < 0 {
			return false
		}
		if quantity > 0 {
			anyPositive = true
		}
	}

	return anyPositive
}

func (rv *RequestValidator) ValidateBookingRequest(req *model.BookingRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return translateValidationErrors(err)
	}
	return nil
}

func (rv *RequestValidator) ValidateCancellationRequest(req *model.CancellationRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return translateValidationErrors(err)
	}
	return nil
}

func translateValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InvalidInput(err.Error())
	}

	details := make(map[string]any, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[strings.ToLower(fieldErr.Field())] = fieldMessage(fieldErr)
	}

	return apperrors.Validation("request validation failed", details)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	case "passenger_counts":
		return "must map valid categories to non-negative counts with at least one positive"
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}

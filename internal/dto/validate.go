package dto

import (
	validatorv10 "github.com/go-playground/validator/v10"

	apperrors "ordersvc/internal/errors"
)

var validate = validatorv10.New()

// ValidateCreateOrderRequest runs the declarative rules on the request and
// converts failures into the service's ValidationError shape.
func ValidateCreateOrderRequest(req CreateOrderRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid request")
	}

	details := make([]apperrors.ValidationDetail, 0, len(ve))
	for _, fe := range ve {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Namespace(),
			Message: fe.Tag(),
		})
	}

	return apperrors.NewValidationError("invalid request", details...)
}

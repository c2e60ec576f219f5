package response

import (
	"errors"

	"regive-backend/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// SuccessBody is the standardized success JSON shape.
type SuccessBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorBody is the standardized error JSON shape.
type ErrorBody struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

// ErrorDetail is the nested error object.
type ErrorDetail struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

const statusSuccess = "success"
const statusError = "error"

// Success sends a 200 OK response with the standard success format.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(SuccessBody{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessCreated sends a 201 Created response with the standard success format.
func SuccessCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessBody{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error sends a response with the standard error format.
func Error(c *fiber.Ctx, message string, statusCode int, details interface{}) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	return c.Status(statusCode).JSON(ErrorBody{
		Status: statusError,
		Error: ErrorDetail{
			Message:    message,
			StatusCode: statusCode,
			Details:    details,
		},
	})
}

// Unauthorized sends 401 with the same shape as other errors.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized, nil)
}

// Forbidden sends 403 with the standard error format.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusForbidden, nil)
}

// FromError maps the service error taxonomy to the standard error format:
// validation 400, not found 404, external service 502, storage/unknown 500.
func FromError(c *fiber.Ctx, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return Error(c, ve.Message, fiber.StatusBadRequest, fiber.Map{"field": ve.Field})
	}
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		return Error(c, nf.Error(), fiber.StatusNotFound, nil)
	}
	var ee *apperrors.ExternalServiceError
	if errors.As(err, &ee) {
		return Error(c, "Upstream service failure", fiber.StatusBadGateway, fiber.Map{"service": ee.Service})
	}
	return Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
}

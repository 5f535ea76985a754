package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	resp := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		resp.Message = message[0]
	}

	c.JSON(statusCode, resp)
}

func SendError(c *gin.Context, statusCode int, code string, errs []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errs,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	SendError(c, http.StatusBadRequest, "BAD_REQUEST", []response.ValidationError{
		{Field: field, Message: message},
	})
}

func SendUnauthorizedError(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", []response.ValidationError{
		{Field: "auth", Message: message},
	})
}

func SendNotFoundError(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, "NOT_FOUND", []response.ValidationError{
		{Field: "resource", Message: message},
	})
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", []response.ValidationError{
		{Field: "server", Message: message},
	}, details...)
}

// SendDomainError maps the domain error taxonomy onto transport codes.
// Anything outside the taxonomy is an internal failure.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		SendBadRequestError(c, "email", domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrWeakPassword):
		SendBadRequestError(c, "password", domain.ErrWeakPassword.Error())
	case errors.Is(err, domain.ErrInvalidCredential):
		SendUnauthorizedError(c, "Invalid email or password")
	case errors.Is(err, domain.ErrUserNotFound):
		SendNotFoundError(c, domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrDuplicateTitle):
		SendBadRequestError(c, "title", domain.ErrDuplicateTitle.Error())
	case errors.Is(err, domain.ErrInvalidDueDate):
		SendBadRequestError(c, "due_date", domain.ErrInvalidDueDate.Error())
	case errors.Is(err, domain.ErrInvalidFromDate):
		SendBadRequestError(c, "from", domain.ErrInvalidFromDate.Error())
	case errors.Is(err, domain.ErrInvalidToDate):
		SendBadRequestError(c, "to", domain.ErrInvalidToDate.Error())
	case errors.Is(err, domain.ErrNoMatch):
		SendNotFoundError(c, domain.ErrNoMatch.Error())
	case errors.Is(err, domain.ErrTodoNotFound):
		SendNotFoundError(c, domain.ErrTodoNotFound.Error())
	default:
		SendInternalError(c, "Unexpected error")
	}
}

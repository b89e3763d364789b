package handlers

import (
	"errors"
	"net/http"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/dto"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto the HTTP error envelope:
// validation and business-rule errors are 400, not-found 404, storage 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr   *dom.ValidationError
		notFoundErr     *dom.NotFoundError
		businessRuleErr *dom.BusinessRuleError
		storageErr      *dom.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    dto.CodeValidation,
			Message: validationErr.Message,
			Field:   validationErr.Field,
		}})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    dto.CodeNotFound,
			Message: notFoundErr.Error(),
		}})
	case errors.As(err, &businessRuleErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    dto.CodeBusinessRule,
			Message: businessRuleErr.Message,
		}})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    dto.CodeStorage,
			Message: storageErr.Error(),
		}})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    dto.CodeInternal,
			Message: err.Error(),
		}})
	}
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
		Code:    dto.CodeValidation,
		Message: err.Error(),
	}})
}

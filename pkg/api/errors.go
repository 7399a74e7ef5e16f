package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kurt-labs/kurt/pkg/services"
	workflowerrors "github.com/kurt-labs/kurt/pkg/workflow"
)

// respondError maps service and workflow errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound) || workflowerrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case services.IsValidationError(err) || errors.Is(err, services.ErrInvalidInput) || workflowerrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

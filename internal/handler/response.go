// Package handler implements the HTTP API on top of the service layer.
// Handlers bind and validate request bodies, call a service, and map
// errors onto status codes; they hold no business logic.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tzuhao-hung/expense-tracker/internal/calculator"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondError maps service errors to status codes. Not-found sentinels
// become 404, validation and conflict errors become 400, everything else
// is a 500 with the detail kept out of the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrExpenseNotFound),
		errors.Is(err, storage.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrUserExists),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrInvalidSplitKind),
		errors.Is(err, calculator.ErrNegativeSplitValue),
		errors.Is(err, calculator.ErrPayerNotIncluded),
		errors.Is(err, calculator.ErrFixedExceedsTotal),
		errors.Is(err, calculator.ErrAllocationExceedsTotal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("Request handling failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

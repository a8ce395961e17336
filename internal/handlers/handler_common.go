package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvariantViolation):
		logger.Error("Ledger data is inconsistent", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ledger data is inconsistent"})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// respondDependencyError treats a missing referenced resource as a bad request.
func respondDependencyError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Dependency not found", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respondError(c, logger, err, failMsg)
}

// idParam reads a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrValidation, name)
	}
	return id, nil
}

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseAccountType(fl.Field().String())
			return err == nil
		})
	}
}

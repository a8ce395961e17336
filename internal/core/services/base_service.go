package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// requireName trims name and rejects it when empty.
func requireName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", apperrors.ErrValidation, kind)
	}
	return name, nil
}

func requireID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive, got %d", apperrors.ErrValidation, kind, id)
	}
	return nil
}

// notFound turns a lookup miss into apperrors.ErrNotFound.
func notFound(kind string, key any) error {
	return fmt.Errorf("%w: %s %v", apperrors.ErrNotFound, kind, key)
}

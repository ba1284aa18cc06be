package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now   func() time.Time
	newID func() string
}

// ServiceOption is a functional option shared by every ledger service
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock, mainly for tests
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *BaseService) {
		s.newID = newID
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time from the configured clock
func (s *BaseService) Now() time.Time {
	return s.now()
}

// NewID returns a fresh entity identifier
func (s *BaseService) NewID() string {
	return s.newID()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

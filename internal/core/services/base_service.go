package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/SscSPs/shop_management_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events events.Publisher
}

// Option configures the BaseService part of a service.
type Option func(*BaseService)

// WithPublisher makes the service announce its mutations on p.
func WithPublisher(p events.Publisher) Option {
	return func(s *BaseService) {
		s.Events = p
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
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

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish announces a persisted change. Without a publisher it does nothing.
func (s *BaseService) Publish(ctx context.Context, evt events.RecordChanged) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(ctx, evt)
}

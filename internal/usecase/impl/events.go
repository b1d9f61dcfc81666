package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent sends an event after the state change has been committed. Failures are logged, not returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, data any) {
	if publisher == nil {
		return
	}

	event := &service.Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Publisher is the outbound channel notifications are handed to.
type Publisher interface {
	PublishNotification(ctx context.Context, n model.Notification) error
}

type NotificationApp interface {
	Notify(ctx context.Context, kind constant.NotificationKind, recipientID uint64, payload map[string]string)
}

type notificationAppImpl struct {
	publisher Publisher
}

// NewNotificationApp accepts a nil publisher; notifications are then only logged.
func NewNotificationApp(publisher Publisher) NotificationApp {
	return &notificationAppImpl{publisher: publisher}
}

// Notify never fails the caller. Delivery problems are logged and dropped.
func (s *notificationAppImpl) Notify(ctx context.Context, kind constant.NotificationKind, recipientID uint64, payload map[string]string) {
	n := model.Notification{
		EventID:     uuid.NewString(),
		Kind:        kind,
		RecipientID: recipientID,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}

	if s.publisher == nil {
		logger.Info("[Notify] no publisher configured", zap.String("kind", string(kind)), zap.Uint64("recipient_id", recipientID))
		return
	}
	if err := s.publisher.PublishNotification(ctx, n); err != nil {
		logger.Error("[Notify] publish failed",
			zap.String("kind", string(kind)),
			zap.Uint64("recipient_id", recipientID),
			zap.String("event_id", n.EventID),
			zap.String("error", err.Error()))
	}
}

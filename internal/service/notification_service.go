package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/buddy-service/internal/config"
	"github.com/spec-kit/buddy-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventMatchesComputed, n.handleMatchesComputed)
	n.dispatcher.Subscribe(events.EventRosterRejected, n.handleRosterRejected)
}

func (n *NotificationService) handleMatchesComputed(ctx context.Context, event events.Event) error {
	n.logger.Info("MatchesComputed", zap.String("run_id", event.RunID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRosterRejected(ctx context.Context, event events.Event) error {
	n.logger.Info("RosterRejected", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("run_id", event.RunID),
		zap.String("event_type", string(event.Type)))
}

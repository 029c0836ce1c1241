package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/bankqueue/queue-service/internal/config"
	"github.com/bankqueue/queue-service/internal/events"
)

// NotificationService reacts to post-commit booking events. Delivery is
// stubbed: events are logged and, when targets are configured, handed to
// the email/webhook stubs.
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

// RegisterHandlers subscribes to booking events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketBooked, n.handleTicketBooked)
	n.dispatcher.Subscribe(events.EventTicketRebooked, n.handleTicketRebooked)
	n.dispatcher.Subscribe(events.EventTicketCancelled, n.handleTicketCancelled)
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
}

func (n *NotificationService) handleTicketBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketBooked", zap.String("user_login", event.UserLogin), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketRebooked(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketRebooked", zap.String("user_login", event.UserLogin), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCancelled", zap.String("user_login", event.UserLogin), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("user_login", event.UserLogin))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("user_login", event.UserLogin),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("user_login", event.UserLogin),
		zap.String("event_type", string(event.Type)))
}

package notification

import (
	"context"
	"fmt"
	"strings"

	"anndann/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService announces new volunteers to coordinators.
type NotificationService interface {
	NotifyVolunteerRegistered(ctx context.Context, payload models.VolunteerRegisteredPayload) error
}

// messageSender is the part of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotificationService pushes to an FCM topic that coordinator devices
// subscribe to.
type FCMNotificationService struct {
	sender messageSender
	topic  string
	logger *zap.Logger
}

func NewFCMNotificationService(client *messaging.Client, topic string, logger *zap.Logger) (*FCMNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: messaging client is nil")
	}
	if topic == "" {
		return nil, fmt.Errorf("notification service initialization error: topic is empty")
	}
	return &FCMNotificationService{sender: client, topic: topic, logger: logger}, nil
}

func (s *FCMNotificationService) NotifyVolunteerRegistered(ctx context.Context, p models.VolunteerRegisteredPayload) error {
	msg := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: "New volunteer enrolled",
			Body:  fmt.Sprintf("%s is available %s on %s", p.FullName, strings.ToLower(p.TimeSlot), strings.Join(p.Days, ", ")),
		},
		Data: map[string]string{
			"role":        "volunteer",
			"volunteerId": p.VolunteerID,
			"timeSlot":    p.TimeSlot,
		},
		Android: &messaging.AndroidConfig{
			Priority: "normal",
		},
	}

	response, err := s.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("NotifyVolunteerRegistered: failed to send FCM message: %w", err)
	}
	s.logger.Debug("volunteer notification sent", zap.String("volunteerId", p.VolunteerID), zap.String("messageId", response))
	return nil
}

package notification

import (
	"context"
	"errors"
	"testing"

	"anndann/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/anndann/messages/1", nil
}

func TestNotifyVolunteerRegistered(t *testing.T) {
	sender := &fakeSender{}
	svc := &FCMNotificationService{sender: sender, topic: "volunteer-registrations", logger: zaptest.NewLogger(t)}

	err := svc.NotifyVolunteerRegistered(context.Background(), models.VolunteerRegisteredPayload{
		VolunteerID: "vol-1", FullName: "Asha Rao", TimeSlot: "Morning", Days: []string{"M", "W"},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "volunteer-registrations", msg.Topic)
	assert.Equal(t, "Asha Rao is available morning on M, W", msg.Notification.Body)
	assert.Equal(t, "vol-1", msg.Data["volunteerId"])
}

func TestNotifyVolunteerRegistered_SendFailure(t *testing.T) {
	svc := &FCMNotificationService{sender: &fakeSender{err: errors.New("unavailable")}, topic: "t", logger: zaptest.NewLogger(t)}
	err := svc.NotifyVolunteerRegistered(context.Background(), models.VolunteerRegisteredPayload{VolunteerID: "vol-1"})
	assert.Error(t, err)
}

func TestNewFCMNotificationService_RequiresClient(t *testing.T) {
	_, err := NewFCMNotificationService(nil, "topic", zaptest.NewLogger(t))
	assert.Error(t, err)
}

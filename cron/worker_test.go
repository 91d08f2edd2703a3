package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"anndann/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type fakeNotifier struct {
	got []models.VolunteerRegisteredPayload
	err error
}

func (f *fakeNotifier) NotifyVolunteerRegistered(_ context.Context, p models.VolunteerRegisteredPayload) error {
	f.got = append(f.got, p)
	return f.err
}

func TestHandleVolunteerRegisteredTask(t *testing.T) {
	n := &fakeNotifier{}
	h := handleVolunteerRegisteredTask(n, zaptest.NewLogger(t))

	task := asynq.NewTask("volunteer:registered", []byte(`{"volunteerId":"vol-1","fullName":"Asha","timeSlot":"Night","days":["Sa"]}`))
	require.NoError(t, h(context.Background(), task))
	require.Len(t, n.got, 1)
	assert.Equal(t, "vol-1", n.got[0].VolunteerID)
	assert.Equal(t, []string{"Sa"}, n.got[0].Days)
}

func TestHandleVolunteerRegisteredTask_BadPayloadSkipsRetry(t *testing.T) {
	n := &fakeNotifier{}
	h := handleVolunteerRegisteredTask(n, zaptest.NewLogger(t))

	err := h(context.Background(), asynq.NewTask("volunteer:registered", []byte(`{not json`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, n.got)
}

func TestHandleVolunteerRegisteredTask_NotifyFailureRetries(t *testing.T) {
	n := &fakeNotifier{err: errors.New("fcm unavailable")}
	h := handleVolunteerRegisteredTask(n, zaptest.NewLogger(t))

	err := h(context.Background(), asynq.NewTask("volunteer:registered", []byte(`{"volunteerId":"vol-1"}`)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestMonitorRedisConnection_StopsOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitorRedisConnection(ctx, client, 10*time.Millisecond, zap.New(core))
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("[NotificationWorker] Redis connection lost").Len() > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
	assert.ErrorIs(t, client.Ping(context.Background()).Err(), redis.ErrClosed)
}

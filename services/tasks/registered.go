package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"anndann/models"

	"github.com/hibiken/asynq"
)

const TypeVolunteerRegistered = "volunteer:registered"

func NewVolunteerRegisteredTask(payload models.VolunteerRegisteredPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeVolunteerRegistered, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Queue("default")}

	return task, opts, nil
}

// enqueuer is the part of *asynq.Client the publisher needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePublisher hands stored registrations to the background worker.
type QueuePublisher struct {
	client enqueuer
}

func NewQueuePublisher(client *asynq.Client) *QueuePublisher {
	return &QueuePublisher{client: client}
}

func (p *QueuePublisher) PublishRegistered(ctx context.Context, record models.VolunteerRecord) error {
	task, opts, err := NewVolunteerRegisteredTask(models.VolunteerRegisteredPayload{
		VolunteerID: record.ID,
		FullName:    record.FullName,
		TimeSlot:    record.TimeSlot,
		Days:        record.Days,
	})
	if err != nil {
		return fmt.Errorf("build %s task: %w", TypeVolunteerRegistered, err)
	}
	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s task: %w", TypeVolunteerRegistered, err)
	}
	return nil
}

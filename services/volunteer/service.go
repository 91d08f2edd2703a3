package volunteer

import (
	"context"
	"errors"
	"fmt"
	"time"

	volunteerRepo "anndann/database/repository/volunteer"
	"anndann/models"

	"go.uber.org/zap"
)

// ErrPersistence marks a registration that passed validation but could not
// be written to the document store.
var ErrPersistence = errors.New("failed to persist volunteer")

// VolunteerService validates and persists volunteer registrations.
type VolunteerService interface {
	RegisterVolunteer(ctx context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error)
	RegisterVolunteerJSON(ctx context.Context, body []byte) (*models.VolunteerRecord, error)
}

// RegistrationPublisher is notified after a registration has been stored.
type RegistrationPublisher interface {
	PublishRegistered(ctx context.Context, record models.VolunteerRecord) error
}

// DefaultVolunteerService is the production implementation.
type DefaultVolunteerService struct {
	Repo      volunteerRepo.VolunteerRepository
	Validator *Validator
	Publisher RegistrationPublisher
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewDefaultVolunteerService(repo volunteerRepo.VolunteerRepository, publisher RegistrationPublisher, logger *zap.Logger) *DefaultVolunteerService {
	return &DefaultVolunteerService{
		Repo:      repo,
		Validator: NewValidator(),
		Publisher: publisher,
		Logger:    logger,
		Now:       time.Now,
	}
}

// RegisterVolunteer validates reg and creates exactly one record for it.
// Validation failures are returned as *ValidationError; store failures wrap
// ErrPersistence.
func (s *DefaultVolunteerService) RegisterVolunteer(ctx context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error) {
	if err := s.Validator.Validate(reg); err != nil {
		return nil, err
	}
	return s.create(ctx, reg)
}

// RegisterVolunteerJSON is RegisterVolunteer for a raw request body. A body
// that is not a JSON object yields ErrMalformedBody.
func (s *DefaultVolunteerService) RegisterVolunteerJSON(ctx context.Context, body []byte) (*models.VolunteerRecord, error) {
	reg, err := s.Validator.ValidateJSON(body)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, reg)
}

func (s *DefaultVolunteerService) create(ctx context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error) {
	record := models.VolunteerRecord{
		VolunteerRegistration: reg,
		CreatedAt:             s.Now().UTC(),
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	record.ID = id

	if s.Publisher != nil {
		if err := s.Publisher.PublishRegistered(ctx, record); err != nil {
			s.Logger.Warn("failed to publish volunteer registration",
				zap.String("volunteerId", id), zap.Error(err))
		}
	}
	return &record, nil
}

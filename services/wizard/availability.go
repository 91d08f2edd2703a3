package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"anndann/client"
	"anndann/models"

	"go.uber.org/zap"
)

const (
	MsgNoTimeSlot    = "Please select a time slot!"
	MsgNoDay         = "Please select at least one day!"
	MsgNetwork       = "Unable to reach the server. Please try again later."
	MsgSubmitFailed  = "Failed to add volunteer. Please try again."
	MsgDraftNotSaved = "Could not save your selection. Please try again."
)

// AvailabilityStep selects a time slot and days, then submits the whole
// draft.
//
//	editing --Next, no slot--> error(A) --ack--> editing
//	editing --Next, no day--> error(B) --ack--> editing
//	editing --Next, valid--> submitting --2xx--> success --ack--> home
//	submitting --4xx/5xx/network--> error(message) --ack--> editing
type AvailabilityStep struct {
	mu        sync.Mutex
	draft     DraftStore
	submitter Submitter
	logger    *zap.Logger

	timeSlot string
	days     map[models.Day]bool
	state    State
	message  string
	record   *models.VolunteerRecord

	// OnStateChange, when set, observes every transition.
	OnStateChange func(State)
}

// NewAvailabilityStep hydrates prior choices from the draft.
func NewAvailabilityStep(ctx context.Context, draft DraftStore, submitter Submitter, logger *zap.Logger) *AvailabilityStep {
	d := draft.Get(ctx)
	s := &AvailabilityStep{
		draft:     draft,
		submitter: submitter,
		logger:    logger,
		days:      make(map[models.Day]bool),
		state:     StateEditing,
	}
	if d.TimeSlot != nil {
		s.timeSlot = *d.TimeSlot
	}
	for _, day := range d.Days {
		s.days[models.Day(day)] = true
	}
	return s
}

// SelectTimeSlot picks the single time slot.
func (s *AvailabilityStep) SelectTimeSlot(slot models.TimeSlot) error {
	for _, valid := range models.TimeSlots {
		if slot == valid {
			s.mu.Lock()
			s.timeSlot = string(slot)
			s.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("unknown time slot %q", slot)
}

// ToggleDay flips one day in or out of the selection.
func (s *AvailabilityStep) ToggleDay(day models.Day) error {
	if !isKnownDay(day) {
		return fmt.Errorf("unknown day %q", day)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.days[day] {
		delete(s.days, day)
	} else {
		s.days[day] = true
	}
	return nil
}

// ToggleWeekdays removes every weekday when all are selected and adds the
// missing ones otherwise. Weekend days are never touched.
func (s *AvailabilityStep) ToggleWeekdays() {
	s.toggleGroup(models.Weekdays)
}

// ToggleWeekend is ToggleWeekdays for Saturday and Sunday.
func (s *AvailabilityStep) ToggleWeekend() {
	s.toggleGroup(models.Weekend)
}

func (s *AvailabilityStep) toggleGroup(group []models.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.hasAll(group)
	for _, d := range group {
		if all {
			delete(s.days, d)
		} else {
			s.days[d] = true
		}
	}
}

// WeekdaysSelected reports whether the weekday toggle shows as checked.
func (s *AvailabilityStep) WeekdaysSelected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasAll(models.Weekdays)
}

// WeekendSelected reports whether the weekend toggle shows as checked.
func (s *AvailabilityStep) WeekendSelected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasAll(models.Weekend)
}

func (s *AvailabilityStep) hasAll(group []models.Day) bool {
	for _, d := range group {
		if !s.days[d] {
			return false
		}
	}
	return true
}

// Days returns the selected days in week order.
func (s *AvailabilityStep) Days() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDays()
}

func (s *AvailabilityStep) selectedDays() []string {
	days := []string{}
	for _, d := range models.Week {
		if s.days[d] {
			days = append(days, string(d))
		}
	}
	return days
}

func (s *AvailabilityStep) TimeSlot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeSlot
}

// Next validates the selection, stores it in the draft and submits the full
// draft. It blocks until the submission completes. Calling Next while a
// submission is in flight returns ErrBusy.
func (s *AvailabilityStep) Next(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return ErrBusy
	case StateSuccess:
		s.mu.Unlock()
		return nil
	}
	if s.timeSlot == "" {
		s.setLocked(StateError, MsgNoTimeSlot)
		s.mu.Unlock()
		return nil
	}
	days := s.selectedDays()
	if len(days) == 0 {
		s.setLocked(StateError, MsgNoDay)
		s.mu.Unlock()
		return nil
	}
	slot := s.timeSlot
	s.setLocked(StateSubmitting, "")
	s.mu.Unlock()

	if err := s.draft.Merge(ctx, models.VolunteerDraft{TimeSlot: models.StringPtr(slot), Days: days}); err != nil {
		s.set(StateError, MsgDraftNotSaved)
		return nil
	}

	record, err := s.submitter.SubmitRegistration(ctx, s.draft.Get(ctx).Registration())
	if err != nil {
		s.set(StateError, submissionMessage(err))
		return nil
	}

	// The record is stored; a failure to clear leaves only a stale draft.
	if err := s.draft.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear draft after enrolment",
			zap.String("volunteerId", record.ID), zap.Error(err))
	}

	s.mu.Lock()
	s.record = record
	s.mu.Unlock()
	s.set(StateSuccess, "Your details successfully Enrolled !")
	return nil
}

// Acknowledge dismisses the current modal. From error it returns to
// editing; from success it returns the route to navigate to.
func (s *AvailabilityStep) Acknowledge() (next string) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	switch state {
	case StateError:
		s.set(StateEditing, "")
	case StateSuccess:
		return HomeRoute
	}
	return ""
}

func (s *AvailabilityStep) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AvailabilityStep) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Record returns the stored registration once the step has succeeded.
func (s *AvailabilityStep) Record() *models.VolunteerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

func (s *AvailabilityStep) set(state State, message string) {
	s.mu.Lock()
	s.setLocked(state, message)
	s.mu.Unlock()
}

// setLocked must be called with mu held. The observer runs synchronously and
// must not call back into the step.
func (s *AvailabilityStep) setLocked(state State, message string) {
	s.state = state
	s.message = message
	if s.OnStateChange != nil {
		s.OnStateChange(state)
	}
}

// submissionMessage maps a submission failure to what the user sees:
// validation errors verbatim, network failures with a retry hint.
func submissionMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, client.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return MsgNetwork
	default:
		return MsgSubmitFailed
	}
}

func isKnownDay(day models.Day) bool {
	for _, d := range models.Week {
		if d == day {
			return true
		}
	}
	return false
}

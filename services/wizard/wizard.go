// Package wizard holds the controllers behind the volunteer registration
// wizard: details, availability and location. Each step is a small state
// machine driven by user actions and backed by an injected draft store.
package wizard

import (
	"context"
	"errors"

	"anndann/models"
)

// State is the state of one wizard step.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateError      State = "error"
	StateSuccess    State = "success"
)

// HomeRoute is where a volunteer lands after acknowledging enrolment.
const HomeRoute = "/volunteer/home"

// ErrBusy is returned when an action is triggered while the step is still
// waiting for a previous request.
var ErrBusy = errors.New("a request is already in progress")

// DraftStore is the draft handle a step reads from and writes through to.
// Get never fails; an unreadable draft is reported as empty.
type DraftStore interface {
	Get(ctx context.Context) models.VolunteerDraft
	Merge(ctx context.Context, partial models.VolunteerDraft) error
	Clear(ctx context.Context) error
}

// Submitter sends a complete registration to the registration endpoint.
type Submitter interface {
	SubmitRegistration(ctx context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error)
}

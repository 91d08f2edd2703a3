package draft

import (
	"context"
	"errors"

	"anndann/models"
)

// SessionHeader carries the draft session key between the API and its
// clients.
const SessionHeader = "X-Session-ID"

// ErrNoSession is returned when an operation is attempted without a key.
var ErrNoSession = errors.New("draft session key is required")

// Store holds one in-progress volunteer registration per session key.
type Store interface {
	// Get returns the stored draft, or an empty draft when none exists.
	Get(ctx context.Context, key string) (models.VolunteerDraft, error)
	// Merge overwrites the fields set in partial, keeps the others and
	// returns the resulting draft.
	Merge(ctx context.Context, key string, partial models.VolunteerDraft) (models.VolunteerDraft, error)
	// Clear removes the draft entirely.
	Clear(ctx context.Context, key string) error
}

package wizard

import (
	"context"
	"testing"

	"anndann/models"
	"anndann/services/draft"

	"go.uber.org/zap/zaptest"
)

func newDraft(t *testing.T) *draft.Session {
	t.Helper()
	return draft.NewSession(draft.NewMemoryStore(), "tab-1", zaptest.NewLogger(t))
}

type fakeSubmitter struct {
	calls  []models.VolunteerRegistration
	record *models.VolunteerRecord
	err    error
	during func()
}

func (f *fakeSubmitter) SubmitRegistration(_ context.Context, reg models.VolunteerRegistration) (*models.VolunteerRecord, error) {
	f.calls = append(f.calls, reg)
	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.record != nil {
		return f.record, nil
	}
	return &models.VolunteerRecord{ID: "vol-1", VolunteerRegistration: reg}, nil
}

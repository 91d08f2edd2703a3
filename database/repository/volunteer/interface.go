package volunteerRepo

import (
	"context"

	"anndann/models"
)

// Collection is the document collection every registration is written to.
const Collection = "volunteers"

// VolunteerRepository persists volunteer registrations. Create stores the
// record and returns the identifier the store assigned to it. Records are
// write-only from this service; coordinators read them in the store's console.
type VolunteerRepository interface {
	Create(ctx context.Context, record models.VolunteerRecord) (string, error)
}

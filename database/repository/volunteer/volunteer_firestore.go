package volunteerRepo

import (
	"context"
	"fmt"

	"anndann/models"

	"cloud.google.com/go/firestore"
)

// FirestoreVolunteerRepo implements VolunteerRepository on a Firestore
// collection, letting Firestore assign document ids.
type FirestoreVolunteerRepo struct {
	client *firestore.Client
}

func NewFirestoreVolunteerRepo(client *firestore.Client) VolunteerRepository {
	return &FirestoreVolunteerRepo{client: client}
}

// Create adds a new document to the volunteers collection.
func (r *FirestoreVolunteerRepo) Create(ctx context.Context, record models.VolunteerRecord) (string, error) {
	ref, _, err := r.client.Collection(Collection).Add(ctx, toDocument(record))
	if err != nil {
		return "", fmt.Errorf("add volunteer document: %w", err)
	}
	return ref.ID, nil
}

func toDocument(record models.VolunteerRecord) map[string]interface{} {
	return map[string]interface{}{
		"fullName":    record.FullName,
		"phoneNumber": record.PhoneNumber,
		"occupation":  record.Occupation,
		"address":     record.Address,
		"pinCode":     record.PinCode,
		"aadharId":    record.AadharID,
		"timeSlot":    record.TimeSlot,
		"days":        record.Days,
		"createdAt":   record.CreatedAt,
	}
}

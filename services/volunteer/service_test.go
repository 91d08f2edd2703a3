package volunteer

import (
	"context"
	"errors"
	"testing"
	"time"

	"anndann/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRepo struct {
	created []models.VolunteerRecord
	err     error
}

func (f *fakeRepo) Create(_ context.Context, record models.VolunteerRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, record)
	return "vol-1", nil
}

type fakePublisher struct {
	published []models.VolunteerRecord
	err       error
}

func (f *fakePublisher) PublishRegistered(_ context.Context, record models.VolunteerRecord) error {
	f.published = append(f.published, record)
	return f.err
}

func newTestService(t *testing.T, repo *fakeRepo, pub RegistrationPublisher) *DefaultVolunteerService {
	svc := NewDefaultVolunteerService(repo, pub, zaptest.NewLogger(t))
	svc.Now = func() time.Time { return time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestRegisterVolunteer_Persists(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc := newTestService(t, repo, pub)

	record, err := svc.RegisterVolunteer(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, "vol-1", record.ID)
	assert.Equal(t, validRegistration(), record.VolunteerRegistration)
	assert.Equal(t, time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC), record.CreatedAt)
	require.Len(t, repo.created, 1)
	assert.Equal(t, record.CreatedAt, repo.created[0].CreatedAt)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "vol-1", pub.published[0].ID)
}

func TestRegisterVolunteer_ValidationSkipsStore(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, nil)

	reg := validRegistration()
	reg.PhoneNumber = "98765"
	_, err := svc.RegisterVolunteer(context.Background(), reg)

	requireKind(t, err, InvalidPhoneFormat)
	assert.Empty(t, repo.created)
}

func TestRegisterVolunteer_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	pub := &fakePublisher{}
	svc := newTestService(t, &fakeRepo{err: storeErr}, pub)

	_, err := svc.RegisterVolunteer(context.Background(), validRegistration())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, pub.published)
}

func TestRegisterVolunteer_PublishFailureIsNotFatal(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, &fakePublisher{err: errors.New("queue down")})

	record, err := svc.RegisterVolunteer(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "vol-1", record.ID)
	assert.Len(t, repo.created, 1)
}

func TestRegisterVolunteerJSON(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, nil)

	_, err := svc.RegisterVolunteerJSON(context.Background(), []byte(`{"timeSlot":7}`))
	vErr := requireKind(t, err, MissingFields)
	assert.NotContains(t, vErr.Fields, "timeSlot")
	assert.Empty(t, repo.created)

	_, err = svc.RegisterVolunteerJSON(context.Background(), []byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrMalformedBody)

	record, err := svc.RegisterVolunteerJSON(context.Background(), []byte(`{
		"fullName":"Asha Rao","phoneNumber":"9876543210","occupation":"Teacher",
		"address":"12 MG Road, Bengaluru","pinCode":"560001","aadharId":"1234-5678-9012",
		"timeSlot":"Morning","days":["M","W","F"],"referrer":"ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, validRegistration(), record.VolunteerRegistration)
	assert.Len(t, repo.created, 1)
}

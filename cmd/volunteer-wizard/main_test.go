package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"anndann/client"
	"anndann/handlers"
	"anndann/models"
	"anndann/services/draft"
	"anndann/services/volunteer"
	"anndann/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type captureRepo struct {
	created []models.VolunteerRecord
}

func (r *captureRepo) Create(_ context.Context, record models.VolunteerRecord) (string, error) {
	r.created = append(r.created, record)
	return "vol-7", nil
}


type fixedGeocoder struct{}

func (fixedGeocoder) Search(context.Context, string) ([]models.Place, error) {
	return []models.Place{{DisplayName: "Jayanagar, Bengaluru", Lat: "12.925", Lon: "77.5938"}}, nil
}

func (fixedGeocoder) Reverse(context.Context, float64, float64) (*models.Place, error) {
	return nil, errors.New("unavailable")
}

func newTestAPI(t *testing.T, repo *captureRepo, store draft.Store) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	vh := handlers.NewVolunteerHandler(volunteer.NewDefaultVolunteerService(repo, nil, logger))
	dh := handlers.NewDraftHandler(store)
	gh := handlers.NewGeocodeHandler(fixedGeocoder{})

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("logger", logger); c.Next() })
	r.POST("/api/volunteers", vh.RegisterVolunteerHandler)
	r.GET("/api/volunteers/draft", dh.GetDraftHandler)
	r.PATCH("/api/volunteers/draft", dh.MergeDraftHandler)
	r.DELETE("/api/volunteers/draft", dh.ClearDraftHandler)
	r.GET("/api/geocode/search", gh.SearchHandler)
	r.GET("/api/geocode/reverse", gh.ReverseHandler)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestCLI(t *testing.T, srv *httptest.Server, session, input string, out *bytes.Buffer, loc wizard.Locator) *wizardCLI {
	logger := zaptest.NewLogger(t)
	c := client.New(srv.URL)
	return &wizardCLI{
		in:      bufio.NewScanner(strings.NewReader(input)),
		out:     out,
		draft:   draft.NewSession(c.Drafts(), session, logger),
		api:     c,
		locator: loc,
		logger:  logger,
	}
}

func TestWizardCLI_FullFlow(t *testing.T) {
	repo := &captureRepo{}
	store := draft.NewMemoryStore()
	srv := newTestAPI(t, repo, store)

	input := strings.Join([]string{
		// details, first pass with a short phone number
		"Asha Rao", "98765", "Teacher", "12 MG Road", "560001", "1234-5678-9012",
		// details, second pass keeps every value but the phone
		"", "9876543210", "", "", "", "",
		// availability, no day selected
		"morning", "",
		// availability, keep slot and pick the weekend plus Monday
		"", "weekend M",
		// location
		"Jayanagar", "1",
	}, "\n") + "\n"

	var out bytes.Buffer
	cli := newTestCLI(t, srv, "sess-1", input, &out, flagLocator{lat: math.NaN(), lon: math.NaN()})
	require.NoError(t, cli.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Phone number must be 10 digits")
	assert.Contains(t, text, wizard.MsgNoDay)
	assert.Contains(t, text, "Your details successfully Enrolled !")
	assert.Contains(t, text, "Volunteer id: vol-7")
	assert.Contains(t, text, wizard.HomeRoute)
	assert.Contains(t, text, "Selected: Jayanagar, Bengaluru")

	require.Len(t, repo.created, 1)
	reg := repo.created[0].VolunteerRegistration
	assert.Equal(t, "9876543210", reg.PhoneNumber)
	assert.Equal(t, "Morning", reg.TimeSlot)
	assert.Equal(t, []string{"M", "Sa", "Su"}, reg.Days)

	left, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, left.IsEmpty(), "draft is cleared after enrolment")
}

func TestWizardCLI_ResumesDraft(t *testing.T) {
	store := draft.NewMemoryStore()
	_, err := store.Merge(context.Background(), "sess-2", models.VolunteerDraft{FullName: models.StringPtr("Ravi")})
	require.NoError(t, err)
	srv := newTestAPI(t, &captureRepo{}, store)

	var out bytes.Buffer
	cli := newTestCLI(t, srv, "sess-2", "", &out, flagLocator{})
	assert.ErrorIs(t, cli.details(context.Background()), errInputClosed)
	assert.Contains(t, out.String(), "Full Name [Ravi]")
}

func TestWizardCLI_CurrentPositionFallback(t *testing.T) {
	srv := newTestAPI(t, &captureRepo{}, draft.NewMemoryStore())

	var out bytes.Buffer
	cli := newTestCLI(t, srv, "sess-3", "here\n", &out, flagLocator{lat: 12.97, lon: 77.59})
	require.NoError(t, cli.location(context.Background()))
	assert.Contains(t, out.String(), "Selected: Current Location (12.97000, 77.59000)")
}

func TestFlagLocator_Unset(t *testing.T) {
	_, _, err := flagLocator{lat: math.NaN(), lon: math.NaN()}.CurrentPosition(context.Background())
	var gErr *wizard.GeolocationError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, wizard.GeolocationPositionUnavailable, gErr.Code)
}

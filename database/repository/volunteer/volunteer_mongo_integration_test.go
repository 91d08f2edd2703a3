//go:build integration

package volunteerRepo

import (
	"context"
	"testing"
	"time"

	"anndann/config"
	"anndann/database"
	"anndann/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap/zaptest"
)

func startMongo(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	endpoint, err := container.PortEndpoint(ctx, "27017/tcp", "mongodb")
	require.NoError(t, err)

	config.AppConfig.DatabaseURL = endpoint
	config.AppConfig.DatabaseName = "anndann_test"
	database.InitDB()
	t.Cleanup(func() {
		_ = database.CloseDB(context.Background())
		database.MongoClient = nil
	})
}

func TestMongoVolunteerRepo(t *testing.T) {
	startMongo(t)
	ctx := context.Background()
	repo := NewMongoVolunteerRepo(zaptest.NewLogger(t))
	coll := database.MongoClient.Database("anndann_test").Collection(Collection)

	created := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	record := models.VolunteerRecord{
		VolunteerRegistration: models.VolunteerRegistration{
			FullName:    "Asha Rao",
			PhoneNumber: "9876543210",
			Occupation:  "Teacher",
			Address:     "12 MG Road",
			PinCode:     "560001",
			AadharID:    "1234-5678-9012",
			TimeSlot:    "Morning",
			Days:        []string{"Sa", "Su"},
		},
		CreatedAt: created,
	}

	t.Run("create assigns a uuid and persists createdAt", func(t *testing.T) {
		id, err := repo.Create(ctx, record)
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		require.NoError(t, err)

		var stored models.VolunteerRecord
		require.NoError(t, coll.FindOne(ctx, bson.M{"id": id}).Decode(&stored))
		assert.Equal(t, id, stored.ID)
		assert.True(t, created.Equal(stored.CreatedAt), "createdAt = %v", stored.CreatedAt)
		assert.Equal(t, record.VolunteerRegistration, stored.VolunteerRegistration)

		var raw bson.M
		require.NoError(t, coll.FindOne(ctx, bson.M{"id": id}).Decode(&raw))
		assert.Contains(t, raw, "fullName")
		assert.Contains(t, raw, "createdAt")
	})

	t.Run("every create gets its own id", func(t *testing.T) {
		a, err := repo.Create(ctx, record)
		require.NoError(t, err)
		b, err := repo.Create(ctx, record)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("indexes exist", func(t *testing.T) {
		cursor, err := coll.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		keys := map[string]bool{}
		for _, idx := range indexes {
			for k := range idx["key"].(bson.M) {
				keys[k] = true
			}
			if idx["name"] == "id_1" {
				assert.Equal(t, true, idx["unique"])
			}
		}
		assert.True(t, keys["id"])
		assert.True(t, keys["createdAt"])
	})
}

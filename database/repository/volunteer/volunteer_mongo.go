package volunteerRepo

import (
	"context"
	"fmt"
	"time"

	"anndann/config"
	"anndann/database"
	"anndann/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoVolunteerRepo implements VolunteerRepository using MongoDB.
type MongoVolunteerRepo struct {
	coll *mongo.Collection
}

// NewMongoVolunteerRepo returns a VolunteerRepository backed by the shared
// Mongo client.
func NewMongoVolunteerRepo(logger *zap.Logger) VolunteerRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection(Collection)
	repo := &MongoVolunteerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create volunteer indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoVolunteerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts the registration and returns its generated id.
func (r *MongoVolunteerRepo) Create(ctx context.Context, record models.VolunteerRecord) (string, error) {
	record.ID = uuid.New().String()
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert volunteer: %w", err)
	}
	return record.ID, nil
}

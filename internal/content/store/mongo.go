package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// The whole site is one document, stored under a fixed key.
const contentDocKey = "content"

// Connect dials the live database. Failure is not fatal: the caller
// degrades to the file backend.
func Connect(uri string, timeout time.Duration, log *logger.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	log.Info("Successfully connected to MongoDB")
	return client, nil
}

type mongoRecord struct {
	ID        string         `bson:"_id"`
	Content   model.Document `bson:"content"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

// MongoStore keeps the content document in a single record, replaced
// wholesale on every save (last-write-wins, single editor).
type MongoStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	log        *logger.Logger
}

func NewMongoStore(client *mongo.Client, database, collection string, timeout time.Duration, log *logger.Logger) *MongoStore {
	return &MongoStore{
		collection: client.Database(database).Collection(collection),
		timeout:    timeout,
		log:        log,
	}
}

func (s *MongoStore) Load(ctx context.Context) (model.Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var record mongoRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": contentDocKey}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("load content from MongoDB: %w", err)
	}
	if len(record.Content) == 0 {
		return nil, contenterrors.ErrEmptyDocument
	}

	s.log.Info("Content loaded from MongoDB", "updated_at", record.UpdatedAt)
	return record.Content, nil
}

func (s *MongoStore) Save(ctx context.Context, doc model.Document) (SaveOutcome, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record := mongoRecord{
		ID:        contentDocKey,
		Content:   doc,
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": contentDocKey}, record, opts); err != nil {
		return OutcomeRemote, fmt.Errorf("save content to MongoDB: %w", err)
	}

	s.log.Info("Content saved to MongoDB")
	return OutcomeRemote, nil
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

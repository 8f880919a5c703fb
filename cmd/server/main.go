package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/activity"
	bookingshandler "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/handler"
	bookingsservice "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/service"
	bookingvalidator "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/validator"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/events"
	contenthandler "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/handler"
	contentservice "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/service"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/store"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/app"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/config"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/kafka"
)

const ServiceName = "content"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	cfg.Log.Info("Starting content service")

	contentStore, mongoClient := initStore(cfg)
	if mongoClient != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(ctx)
		}()
	}

	publisher := initPublisher(cfg)
	defer func() { _ = publisher.Close() }()

	trail := activity.NewLog()

	contentSvc := contentservice.NewService(
		contentStore,
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		trail,
		cfg.Log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	if err := contentSvc.Load(ctx); err != nil {
		cancel()
		cfg.Log.Fatal("Failed to load content", "error", err)
	}
	cancel()

	bookingSvc := bookingsservice.NewService(contentSvc, cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetHandlers(
		contenthandler.NewHealthHandler(mongoClient, contentSvc, cfg.Log),
		contenthandler.NewContentHandler(contentSvc, trail, cfg, cfg.Log),
		bookingshandler.NewBookingHandler(bookingSvc, cfg.Log),
	)
	serverApp.Run()
}

// initStore wires the remote-first storage chain. A missing or unreachable
// MongoDB is degraded, not fatal: the flat file carries the site alone.
func initStore(cfg *config.Config) (store.Store, *mongo.Client) {
	fileStore := store.NewFileStore(cfg.ContentFile, cfg.Log)

	if !cfg.RemoteConfigured() {
		cfg.Log.Info("No MongoDB configured, using file storage only", "file", cfg.ContentFile)
		return fileStore, nil
	}

	client, err := store.Connect(cfg.MongoURI, cfg.MongoConnTimeout, cfg.Log)
	if err != nil {
		cfg.Log.Warn("MongoDB unreachable, using file storage only", "error", err)
		return fileStore, nil
	}

	remote := store.NewMongoStore(client, cfg.MongoDatabaseName, cfg.MongoCollection, cfg.MongoConnTimeout, cfg.Log)
	return store.NewFallbackStore(remote, fileStore, cfg.Log), client
}

func initPublisher(cfg *config.Config) *events.Publisher {
	if !cfg.EventsConfigured() {
		cfg.Log.Info("No Kafka brokers configured, content events disabled")
		return events.NewPublisher(nil, cfg.Log)
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Warn("Failed to create Kafka producer, content events disabled", "error", err)
		return events.NewPublisher(nil, cfg.Log)
	}

	cfg.Log.Info("Content events enabled", "topic", cfg.KafkaTopic)
	return events.NewPublisher(producer, cfg.Log)
}

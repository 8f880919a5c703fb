// Command migrate loads the content document through the configured
// storage chain, normalizes it, and writes it back. Run once after
// upgrading to carry a legacy document (missing sections, items without
// ids) forward; running it again is a no-op.
package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"

	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/normalizer"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/store"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/config"
)

const ServiceName = "migrate"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	contentStore := initStore(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	raw, err := contentStore.Load(ctx)
	if err != nil {
		if !errors.Is(err, contenterrors.ErrNotFound) && !errors.Is(err, contenterrors.ErrEmptyDocument) {
			cfg.Log.Fatal("Failed to load content", "error", err)
		}
		cfg.Log.Warn("No stored content found, writing a normalized skeleton")
		raw = nil
	}

	doc := normalizer.Normalize(raw)

	outcome, err := contentStore.Save(ctx, doc)
	if err != nil {
		cfg.Log.Fatal("Failed to save normalized content", "error", err)
	}

	cfg.Log.Info("Content normalized", "outcome", outcome)
}

func initStore(cfg *config.Config) store.Store {
	fileStore := store.NewFileStore(cfg.ContentFile, cfg.Log)

	if !cfg.RemoteConfigured() {
		return fileStore
	}

	client, err := store.Connect(cfg.MongoURI, cfg.MongoConnTimeout, cfg.Log)
	if err != nil {
		cfg.Log.Warn("MongoDB unreachable, migrating the file copy only", "error", err)
		return fileStore
	}

	remote := store.NewMongoStore(client, cfg.MongoDatabaseName, cfg.MongoCollection, cfg.MongoConnTimeout, cfg.Log)
	return store.NewFallbackStore(remote, fileStore, cfg.Log)
}

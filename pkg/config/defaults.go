package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultContentFile = "content.json"

	DefaultMongoDatabaseName = "venue"
	DefaultMongoCollection   = "content"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultSessionTTL = 12 * time.Hour

	// Images are embedded into the document as base64 data URIs, so the
	// per-image ceiling has to stay small.
	DefaultMaxImageBytes = 500 * 1024

	// Backup imports carry the whole document including embedded images.
	DefaultMaxRequestSize = 10 * 1024 * 1024

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaTopic = "venue-content-events"
)

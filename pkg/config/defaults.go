package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "railbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultReservationLockTTL = 10 * time.Second

	DefaultSeedMinFareRupees     = 300
	DefaultSeedMaxFareRupees     = 5000
	DefaultSeedMinSeats          = 10
	DefaultSeedMaxSeats          = 200
	DefaultSeedMinTrainsPerRoute = 2
	DefaultSeedMaxTrainsPerRoute = 6

	DefaultKafkaEventTopic = "railbook.reservations"

	DefaultPaginationLimit = 100
)

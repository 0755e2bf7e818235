package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvReservationLockTTL = "RESERVATION_LOCK_TTL"

	EnvSeedMinFareRupees     = "SEED_MIN_FARE_RUPEES"
	EnvSeedMaxFareRupees     = "SEED_MAX_FARE_RUPEES"
	EnvSeedMinSeats          = "SEED_MIN_SEATS"
	EnvSeedMaxSeats          = "SEED_MAX_SEATS"
	EnvSeedMinTrainsPerRoute = "SEED_MIN_TRAINS_PER_ROUTE"
	EnvSeedMaxTrainsPerRoute = "SEED_MAX_TRAINS_PER_ROUTE"

	EnvKafkaEventTopic = "KAFKA_EVENT_TOPIC"
)

package config

import (
	"fmt"
	"os"
	"railbook/pkg/client"
	"railbook/pkg/logger"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ReservationLockTTL time.Duration

	SeedMinFareRupees     int
	SeedMaxFareRupees     int
	SeedMinSeats          int
	SeedMaxSeats          int
	SeedMinTrainsPerRoute int
	SeedMaxTrainsPerRoute int

	KafkaEventTopic string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ReservationLockTTL: getEnvDuration(EnvReservationLockTTL, DefaultReservationLockTTL),

		SeedMinFareRupees:     getEnvNum(EnvSeedMinFareRupees, DefaultSeedMinFareRupees),
		SeedMaxFareRupees:     getEnvNum(EnvSeedMaxFareRupees, DefaultSeedMaxFareRupees),
		SeedMinSeats:          getEnvNum(EnvSeedMinSeats, DefaultSeedMinSeats),
		SeedMaxSeats:          getEnvNum(EnvSeedMaxSeats, DefaultSeedMaxSeats),
		SeedMinTrainsPerRoute: getEnvNum(EnvSeedMinTrainsPerRoute, DefaultSeedMinTrainsPerRoute),
		SeedMaxTrainsPerRoute: getEnvNum(EnvSeedMaxTrainsPerRoute, DefaultSeedMaxTrainsPerRoute),

		KafkaEventTopic: getEnvStr(EnvKafkaEventTopic, DefaultKafkaEventTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.ReservationLockTTL <= 0 {
		errors = append(errors, fmt.Sprintf("ReservationLockTTL must be positive, got: %s", cfg.ReservationLockTTL))
	}

	if cfg.SeedMinFareRupees <= 0 {
		errors = append(errors, fmt.Sprintf("SeedMinFareRupees must be positive, got: %d", cfg.SeedMinFareRupees))
	}
	if cfg.SeedMaxFareRupees < cfg.SeedMinFareRupees {
		errors = append(errors, fmt.Sprintf("SeedMaxFareRupees (%d) must be >= SeedMinFareRupees (%d)", cfg.SeedMaxFareRupees, cfg.SeedMinFareRupees))
	}
	if cfg.SeedMinSeats <= 0 {
		errors = append(errors, fmt.Sprintf("SeedMinSeats must be positive, got: %d", cfg.SeedMinSeats))
	}
	if cfg.SeedMaxSeats < cfg.SeedMinSeats {
		errors = append(errors, fmt.Sprintf("SeedMaxSeats (%d) must be >= SeedMinSeats (%d)", cfg.SeedMaxSeats, cfg.SeedMinSeats))
	}
	if cfg.SeedMinTrainsPerRoute <= 0 {
		errors = append(errors, fmt.Sprintf("SeedMinTrainsPerRoute must be positive, got: %d", cfg.SeedMinTrainsPerRoute))
	}
	if cfg.SeedMaxTrainsPerRoute < cfg.SeedMinTrainsPerRoute {
		errors = append(errors, fmt.Sprintf("SeedMaxTrainsPerRoute (%d) must be >= SeedMinTrainsPerRoute (%d)", cfg.SeedMaxTrainsPerRoute, cfg.SeedMinTrainsPerRoute))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"reservation_lock_ttl", cfg.ReservationLockTTL,
		"seed_min_fare_rupees", cfg.SeedMinFareRupees,
		"seed_max_fare_rupees", cfg.SeedMaxFareRupees,
		"seed_min_seats", cfg.SeedMinSeats,
		"seed_max_seats", cfg.SeedMaxSeats,
		"seed_min_trains_per_route", cfg.SeedMinTrainsPerRoute,
		"seed_max_trains_per_route", cfg.SeedMaxTrainsPerRoute,
		"kafka_event_topic", cfg.KafkaEventTopic,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}

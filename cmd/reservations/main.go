package main

import (
	"context"
	inventoryrepo "railbook/internal/inventory/repository"
	inventoryservice "railbook/internal/inventory/service"
	ledgerrepo "railbook/internal/ledger/repository"
	ledgerservice "railbook/internal/ledger/service"
	"railbook/internal/reservation/events"
	reservationhandler "railbook/internal/reservation/handler"
	reservationservice "railbook/internal/reservation/service"
	"railbook/internal/reservation/validator"
	userhandler "railbook/internal/users/handler"
	userrepo "railbook/internal/users/repository"
	userservice "railbook/internal/users/service"
	"railbook/pkg/app"
	"railbook/pkg/config"
	db "railbook/pkg/db/mongo"
	kafka_config "railbook/pkg/kafka/config"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Reservations service")

	inventory, engine, users, publisher := initServices(cfg)

	if inserted, err := inventory.EnsureSeeded(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to seed train catalogue", "error", err)
	} else if inserted > 0 {
		cfg.Log.Info("Fresh database seeded", "trains", inserted)
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		reservationhandler.NewReservationHandler(cfg, engine, inventory),
		userhandler.NewUserHandler(cfg, users),
	)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

func initServices(cfg *config.Config) (inventoryservice.Inventory, reservationservice.Engine, userservice.UserService, events.Publisher) {
	trainRepo := inventoryrepo.NewMongoTrainRepository(cfg)
	inventory := inventoryservice.NewInventoryService(cfg, trainRepo)

	bookingRepo := ledgerrepo.NewMongoBookingRepository(cfg)
	lockRepo := ledgerrepo.NewMongoLockRepository(cfg)
	txManager := db.NewTransactionManager(cfg.Client.Mongo)
	ledger := ledgerservice.NewLedgerService(cfg, bookingRepo, lockRepo, txManager)

	requestValidator, err := validator.NewRequestValidator()
	if err != nil {
		cfg.Log.Fatal("Failed to initialize request validator", "error", err)
	}

	publisher := initPublisher(cfg)
	engine := reservationservice.NewReservationEngine(cfg, inventory, ledger, requestValidator, publisher)

	users := userservice.NewUserService(cfg, userrepo.NewMongoUserRepository(cfg))

	cfg.Log.Info("Reservation engine initialized", "database", cfg.MongoDatabaseName)
	return inventory, engine, users, publisher
}

func initPublisher(cfg *config.Config) events.Publisher {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Event publishing disabled, no Kafka brokers configured")
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewKafkaPublisher(kafkaCfg, cfg.KafkaEventTopic, ServiceName)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}

	cfg.Log.Info("Event publishing enabled", "topic", cfg.KafkaEventTopic, "brokers", kafkaCfg.Brokers)
	return publisher
}

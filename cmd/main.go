package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dremdor/order-service/internal/app"
	"github.com/dremdor/order-service/internal/config"
	"github.com/dremdor/order-service/internal/handler"
	"github.com/dremdor/order-service/internal/postgres"
	"github.com/dremdor/order-service/internal/repo"
	"github.com/dremdor/order-service/internal/service"

	"github.com/joho/godotenv"
)

// @title           Order Service API
// @version         1.0
// @description     Хранение и выдача документов заказов по ключу
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)

	var storage service.BlobStorage
	switch conf.Storage.Backend {
	case "file":
		fs, err := repo.NewFileStorage(conf.Storage.SeedFile)
		panicIfErr("failed to load seed file", err)
		storage = fs
		logger.Info("file storage loaded", slog.String("path", conf.Storage.SeedFile))
	default:
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		panicIfErr("failed to ensure schema", repo.EnsureSchema(ctx, db))
		storage = repo.NewPostgresStorage(db)
		logger.Info("postgres connected")
	}

	orderService := service.NewOrderService(logger, storage)

	application.SetHTTPHandlers(handler.NewHTTPHandler(logger, orderService))

	// Файловый бэкенд read-only, принимать заказы из Kafka ему некуда
	if conf.Storage.Backend == "postgres" {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("application failed", application.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

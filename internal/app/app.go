package app

import (
	"database/sql"
	"fmt"

	"foome-hcm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 10

// App holds everything a process needs. The API server uses all of it; the
// worker and consumer binaries build a subset through BuildBase.
type App struct {
	Config Config
	Logger *zap.Logger

	DB    *gorm.DB
	SQLDB *sql.DB
	RDB   *redis.Client
	Kafka *kafkago.Writer

	Router *gin.Engine
}

// BuildBase connects logging and the data stores shared by every binary.
func BuildBase(cfg Config) (*App, error) {
	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		connectRetries,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		SQLDB:  sqlDB,
	}, nil
}

// Build assembles the full API process: data stores, kafka writer, redis and
// the HTTP router with every module registered.
func Build(cfg Config) (*App, error) {
	a, err := BuildBase(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return nil, err
	}
	a.RDB = rdb

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return nil, err
	}
	a.Kafka = writer

	router, err := buildRouter(a)
	if err != nil {
		return nil, err
	}
	a.Router = router

	return a, nil
}

func (a *App) Close() {
	if a.Kafka != nil {
		_ = a.Kafka.Close()
	}
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
	if a.SQLDB != nil {
		_ = a.SQLDB.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/ValoreSposi/crm-backend/internal/config/env"
)

var cfg *config

type config struct {
	App         App
	Server      Server
	GRPC        GRPC
	Logger      Logger
	Mongo       Database
	Collections Collections
	CORS        CORS
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	appCfg, err := envconfig.NewAppConfig()
	if err != nil {
		return fmt.Errorf("%s App: %w", op, err)
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	grpcCfg, err := envconfig.NewGRPCConfig()
	if err != nil {
		return fmt.Errorf("%s GRPC: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	collectionsCfg, err := envconfig.NewCollectionsConfig()
	if err != nil {
		return fmt.Errorf("%s Collections: %w", op, err)
	}

	corsCfg, err := envconfig.NewCORSConfig()
	if err != nil {
		return fmt.Errorf("%s CORS: %w", op, err)
	}

	cfg = &config{
		App:         appCfg,
		Server:      serverCfg,
		GRPC:        grpcCfg,
		Logger:      loggerCfg,
		Mongo:       mongoCfg,
		Collections: collectionsCfg,
		CORS:        corsCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}

package envconfig

import (
	"os"

	"github.com/caarlos0/env/v11"
)

const defaultMongoURI = "mongodb://localhost:27017"

type mongoEnv struct {
	URI    string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"DATABASE_NAME" envDefault:"test"`
}

type mongo struct {
	raw        mongoEnv
	configured bool
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	_, set := os.LookupEnv("MONGODB_URI")
	return &mongo{raw: raw, configured: set && raw.URI != defaultMongoURI}, nil
}

func (cfg *mongo) DatabaseName() string {
	return cfg.raw.DBName
}

func (cfg *mongo) DSN() string {
	return cfg.raw.URI
}

func (cfg *mongo) Configured() bool {
	return cfg.configured
}

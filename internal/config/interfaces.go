package config

import (
	"time"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

type App interface {
	Environment() string
	// ExposeErrors reports whether error details may be sent to clients.
	ExposeErrors() bool
}

type Client interface {
	Host() string
	Port() int
	Address() string
}

type Server interface {
	Client
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	BDEReadTimeout() time.Duration
}

type GRPC interface {
	Client
	HealthProbeInterval() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	DSN() string
	// Configured is false when the connection string fell back to the default.
	Configured() bool
}

type Collections interface {
	Collections() model.Collections
}

type CORS interface {
	AllowedOrigins() []string
	Strict() bool
}

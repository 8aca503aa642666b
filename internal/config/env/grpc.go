package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type grpcEnv struct {
	Host string `env:"GRPC_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"GRPC_PORT" envDefault:"50051"`

	HealthProbeInterval time.Duration `env:"HEALTH_PROBE_INTERVAL" envDefault:"15s"`
}

type grpcServer struct {
	raw grpcEnv
}

func NewGRPCConfig() (*grpcServer, error) {
	var raw grpcEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &grpcServer{raw: raw}, nil
}

func (cfg *grpcServer) Host() string { return cfg.raw.Host }
func (cfg *grpcServer) Port() int    { return cfg.raw.Port }
func (cfg *grpcServer) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host(), cfg.Port())
}

func (cfg *grpcServer) HealthProbeInterval() time.Duration {
	return cfg.raw.HealthProbeInterval
}

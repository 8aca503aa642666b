package mongo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ValoreSposi/crm-backend/platform/testcontainers"
)

const exposedPort = testcontainers.MongoPort + "/tcp"

func startMongoContainer(ctx context.Context, cfg *Config) (tc.Container, error) {
	req := tc.ContainerRequest{
		Name:     cfg.ContainerName,
		Image:    cfg.ImageName,
		Networks: []string{cfg.NetworkName},
		NetworkAliases: map[string][]string{
			cfg.NetworkName: {testcontainers.MongoNetworkAlias},
		},
		Env: map[string]string{
			mongoEnvUsernameKey:     cfg.Username,
			mongoEnvPasswordKey:     cfg.Password,
			"MONGO_INITDB_DATABASE": cfg.Database,
		},
		ExposedPorts:       []string{exposedPort},
		WaitingFor:         wait.ForListeningPort(exposedPort).WithStartupTimeout(mongoStartupTimeout),
		HostConfigModifier: defaultHostConfig(),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container tc.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "get container host")
	}

	port, err := container.MappedPort(ctx, exposedPort)
	if err != nil {
		return "", "", errors.Wrap(err, "get mapped port")
	}

	return host, port.Port(), nil
}

func buildMongoURI(cfg *Config, host, port string) string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s/%s?authSource=%s",
		cfg.Username,
		cfg.Password,
		host,
		port,
		cfg.Database,
		cfg.AuthDB,
	)
}

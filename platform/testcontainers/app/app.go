package app

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ValoreSposi/crm-backend/platform/logger"
)

const (
	defaultAppName        = "crmexport"
	defaultAppPort        = "3000"
	defaultHealthPath     = "/health"
	defaultStartupTimeout = 2 * time.Minute
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	Name          string
	DockerfileDir string
	Dockerfile    string
	Port          string
	Env           map[string]string
	Networks      []string
	HealthPath    string
	LogOutput     io.Writer
	Logger        Logger
}

type Container struct {
	container    testcontainers.Container
	externalHost string
	externalPort string
	cfg          *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		Name:          defaultAppName,
		Port:          defaultAppPort,
		Dockerfile:    "Dockerfile",
		DockerfileDir: ".",
		HealthPath:    defaultHealthPath,
		LogOutput:     io.Discard,
		Env:           map[string]string{"PORT": defaultAppPort},
		Logger:        &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	startupWait := wait.ForHTTP(cfg.HealthPath).
		WithPort(nat.Port(cfg.Port + "/tcp")).
		WithStartupTimeout(defaultStartupTimeout)

	req := testcontainers.ContainerRequest{
		Name: cfg.Name,
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    cfg.DockerfileDir,
			Dockerfile: cfg.Dockerfile,
		},
		Networks:           cfg.Networks,
		Env:                cfg.Env,
		WaitingFor:         startupWait,
		ExposedPorts:       []string{cfg.Port + "/tcp"},
		HostConfigModifier: DefaultHostConfig(),
	}

	genericContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start app container")
	}

	mappedPort, err := genericContainer.MappedPort(ctx, nat.Port(cfg.Port+"/tcp"))
	if err != nil {
		return nil, errors.Wrap(err, "get mapped port")
	}

	host, err := genericContainer.Host(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get container host")
	}

	go streamContainerLogs(ctx, genericContainer, cfg.Logger, cfg.LogOutput)

	cfg.Logger.Info(ctx, "App container started", logger.String("address", net.JoinHostPort(host, mappedPort.Port())))

	return &Container{
		container:    genericContainer,
		externalHost: host,
		externalPort: mappedPort.Port(),
		cfg:          cfg,
	}, nil
}

func (a *Container) Address() string {
	return net.JoinHostPort(a.externalHost, a.externalPort)
}

func (a *Container) BaseURL() string {
	return "http://" + a.Address()
}

func (a *Container) Terminate(ctx context.Context) error {
	return a.container.Terminate(ctx)
}

func streamContainerLogs(ctx context.Context, container testcontainers.Container, log Logger, out io.Writer) {
	logs, err := container.Logs(ctx)
	if err != nil {
		log.Error(ctx, "failed to get container logs", logger.ErrorF(err))
		return
	}
	defer func() {
		if err := logs.Close(); err != nil {
			log.Error(ctx, "failed to close container logs", logger.ErrorF(err))
		}
	}()

	if _, err = io.Copy(out, logs); err != nil && !errors.Is(err, io.EOF) {
		log.Error(ctx, "error copying container logs", logger.ErrorF(err))
	}
}

func DefaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}

package app

import (
	"io"
	"maps"
)

type Option func(*Config)

func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithDockerfile builds the image from file, relative to the build context dir.
func WithDockerfile(dir, file string) Option {
	return func(c *Config) {
		c.DockerfileDir = dir
		c.Dockerfile = file
	}
}

// WithPort sets the container HTTP port, which is also exported as PORT.
func WithPort(port string) Option {
	return func(c *Config) {
		c.Port = port
		c.Env["PORT"] = port
	}
}

func WithNetworks(names ...string) Option {
	return func(c *Config) {
		c.Networks = append(c.Networks, names...)
	}
}

func WithEnv(env map[string]string) Option {
	return func(c *Config) {
		maps.Copy(c.Env, env)
	}
}

func WithEnvVar(key, value string) Option {
	return func(c *Config) {
		c.Env[key] = value
	}
}

func WithLogOutput(out io.Writer) Option {
	return func(c *Config) {
		c.LogOutput = out
	}
}

// WithHealthPath sets the HTTP path polled until the container is ready.
func WithHealthPath(path string) Option {
	return func(c *Config) {
		c.HealthPath = path
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

package envconfig

import "github.com/caarlos0/env/v11"

type appEnv struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
}

type app struct {
	raw appEnv
}

func NewAppConfig() (*app, error) {
	var raw appEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &app{raw: raw}, nil
}

func (cfg *app) Environment() string { return cfg.raw.Environment }

func (cfg *app) ExposeErrors() bool {
	return cfg.raw.Environment == "development" || cfg.raw.Environment == "local"
}

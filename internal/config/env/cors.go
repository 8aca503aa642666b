package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"https://app.valoresposi.it",
	"http://app.valoresposi.it",
	"https://www.app.valoresposi.it",
	"http://www.app.valoresposi.it",
}

type corsEnv struct {
	AllowedDomains []string `env:"ALLOWED_DOMAINS" envSeparator:","`
	Strict         bool     `env:"CORS_STRICT" envDefault:"false"`
}

type cors struct {
	raw     corsEnv
	origins []string
}

func NewCORSConfig() (*cors, error) {
	var raw corsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	extra := lo.FilterMap(raw.AllowedDomains, func(d string, _ int) (string, bool) {
		d = strings.TrimSpace(d)
		return d, d != ""
	})

	return &cors{
		raw:     raw,
		origins: lo.Uniq(append(append([]string{}, defaultOrigins...), extra...)),
	}, nil
}

func (cfg *cors) AllowedOrigins() []string { return cfg.origins }
func (cfg *cors) Strict() bool             { return cfg.raw.Strict }

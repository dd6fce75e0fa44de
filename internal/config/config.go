package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"3000"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Database struct {
		File string `env:"JSON_DATABASE_FILE"`
	}

	Cors struct {
		AllowOriginsString string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
		AllowOrigins       []string
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_RULES_QUEUE" envDefault:"agenda.rules-api.rules"`
		Exchange string `env:"RABBITMQ_RULES_EXCHANGE" envDefault:"agenda"`
		Bind     string `env:"RABBITMQ_RULES_QUEUE_BIND" envDefault:"agenda.rules-api.rules.*"`
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED"`
		Size    int  `env:"CACHE_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// The rule document is the single source of truth, the process
	// cannot serve traffic without it
	if cfg.Database.File == "" {
		return nil, fmt.Errorf("JSON_DATABASE_FILE is required")
	}

	cfg.Cors.AllowOrigins = []string{}
	for _, origin := range strings.Split(cfg.Cors.AllowOriginsString, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.Cors.AllowOrigins = append(cfg.Cors.AllowOrigins, origin)
		}
	}

	// Without change announcements a warm cache can serve data that an
	// external writer already replaced, so the cache rides on RabbitMQ
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}

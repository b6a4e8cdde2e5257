package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"`

	// DevMode habilita el header X-Debug-User-ID.
	DevMode bool `mapstructure:"devMode"`
}

type SeedConfig struct {
	DemoData bool `mapstructure:"demoData"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

var envBindings = map[string]string{
	"server.port":         "PORT",
	"server.readTimeout":  "SERVER_READ_TIMEOUT",
	"server.writeTimeout": "SERVER_WRITE_TIMEOUT",
	"log.level":           "LOG_LEVEL",
	"log.format":          "LOG_FORMAT",
	"log.app":             "APP_NAME",
	"auth.jwtSecret":      "JWT_SECRET",
	"auth.tokenTTL":       "JWT_TTL",
	"auth.devMode":        "AUTH_DEV_MODE",
	"seed.demoData":       "SEED_DEMO_DATA",
}

// Load lee config.yaml (opcional) desde dir y lo pisa con variables de entorno.
// Si dir está vacío solo se usan defaults + env.
func Load(dir string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "pharmacy-fulfillment")
	v.SetDefault("auth.jwtSecret", "dev-secret-change-me")
	v.SetDefault("auth.tokenTTL", 24*time.Hour)
	v.SetDefault("auth.devMode", true)
	v.SetDefault("seed.demoData", true)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if strings.TrimSpace(dir) != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Server.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Server.Port), ":")
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return Config{}, errors.New("config: auth.jwtSecret must not be empty")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Server.Port
}

package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress       string        `env:"API_ADDRESS" envDefault:":8080"`
	JWTSecret        string        `env:"JWT_SECRET"`
	LogLevel         slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	HandshakeTimeout time.Duration `env:"EXTENSION_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	MigrationsDir    string        `env:"MIGRATIONS_DIR" envDefault:"./migrations"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" envDefault:"stayonx"`
}

// New loads ./configs/.env once and parses the process environment. Exits on malformed values.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads the given dotenv files, skipping missing ones, then parses the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvPaths ...string) (*Config, error) {
	for _, p := range dotenvPaths {
		err := godotenv.Load(p)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	return &cfg, nil
}

// RequireSecret reports a missing JWT secret. Only the API server needs one.
func (c *Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

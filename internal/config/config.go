package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Estate"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host        string `envconfig:"DB_HOST" default:"localhost"`
		Port        int    `envconfig:"DB_PORT" default:"5432"`
		User        string `envconfig:"DB_USER" default:"postgres"`
		Password    string `envconfig:"DB_PASSWORD" default:""`
		Name        string `envconfig:"DB_NAME" default:"estate"`
		SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
		AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
		WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
		IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	Auth struct {
		AccessSecret  string        `envconfig:"JWT_ACCESS_SECRET"`
		AccessTTL     time.Duration `envconfig:"JWT_ACCESS_TTL" default:"15m"`
		RefreshSecret string        `envconfig:"JWT_REFRESH_SECRET"`
		RefreshTTL    time.Duration `envconfig:"JWT_REFRESH_TTL" default:"168h"`
		BcryptCost    int           `envconfig:"BCRYPT_COST" default:"10"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	RateLimit struct {
		AuthRequests int           `envconfig:"RATE_LIMIT_AUTH_REQUESTS" default:"20"`
		AuthWindow   time.Duration `envconfig:"RATE_LIMIT_AUTH_WINDOW" default:"1m"`
	}

	Jobs struct {
		OverdueSchedule string `envconfig:"OVERDUE_SCHEDULE" default:"@hourly"`
	}

	// Client configures the dashboard's connection to the API.
	Client struct {
		BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api/v1"`
		Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// ValidateAPI checks settings only the API server needs.
func (c *Config) ValidateAPI() error {
	if c.Auth.AccessSecret == "" || c.Auth.RefreshSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}

	if c.Auth.AccessSecret == c.Auth.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}

	return nil
}

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the server settings read from the process environment.
type Config struct {
	Port       string `env:"PORT" env-default:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" env-default:"http://localhost:3000"`

	// Persistence endpoint, public client key and the privileged signing key.
	// All three are required; the server refuses to start without them.
	DBURL        string `env:"DB_URL" env-required:"true"`
	PublicAPIKey string `env:"PUBLIC_API_KEY" env-required:"true"`
	JWTSecret    string `env:"JWT_SECRET" env-required:"true"`

	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	AdminUsername string        `env:"ADMIN_USERNAME"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`

	UploadDir      string `env:"UPLOAD_DIR" env-default:"./uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" env-default:"10485760"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

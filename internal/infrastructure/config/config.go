package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Password PasswordConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// JWTConfig is the signing configuration. The key is required, loaded once at
// process start, and never logged.
type JWTConfig struct {
	Key      string        `env:"JWT_KEY, required"`
	Issuer   string        `env:"JWT_ISSUER,   default=quiz-system"`
	Audience string        `env:"JWT_AUDIENCE, default=quiz-system"`
	Lifetime time.Duration `env:"JWT_LIFETIME, default=2h"`
}

// PasswordConfig mirrors the password-policy toggles; each character-class
// requirement can be disabled independently.
type PasswordConfig struct {
	MinLength              int  `env:"PASSWORD_MIN_LENGTH,              default=8"`
	RequireDigit           bool `env:"PASSWORD_REQUIRE_DIGIT,           default=true"`
	RequireLowercase       bool `env:"PASSWORD_REQUIRE_LOWERCASE,       default=true"`
	RequireUppercase       bool `env:"PASSWORD_REQUIRE_UPPERCASE,       default=true"`
	RequireNonAlphanumeric bool `env:"PASSWORD_REQUIRE_NON_ALPHANUMERIC, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=quiz_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

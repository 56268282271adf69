package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/recipess/recipe-api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Origins allowed by the CORS middleware, comma separated.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS, default=*"`

	Auth        AuthConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	Spoonacular SpoonacularConfig
}

type AuthConfig struct {
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"JWT_TTL,      default=24h"`
	TokenCookie string        `env:"TOKEN_COOKIE, default=access_token"`
	BcryptCost  int           `env:"BCRYPT_COST,  default=10"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=recipes"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig is only used when meal plans are enabled.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

type SpoonacularConfig struct {
	BaseURL  string        `env:"SPOONACULAR_BASE_URL, default=https://api.spoonacular.com"`
	APIKey   string        `env:"SPOONACULAR_API_KEY"`
	Timeout  time.Duration `env:"SPOONACULAR_TIMEOUT,  default=10s"`
	CacheTTL time.Duration `env:"MEALPLAN_CACHE_TTL,   default=1h"`
}

// Enabled reports whether meal planning can be served.
func (s SpoonacularConfig) Enabled() bool { return s.APIKey != "" }

func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required: %w", domain.ErrMissingSecret)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

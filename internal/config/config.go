package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvironmentProduction is the environment name in which region overrides are disabled.
const EnvironmentProduction = "production"

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// response cache, region scoping, search limits and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"brewery" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Cache configures the key-value store backing the API response cache
	Cache struct {
		// Driver selects the client library: redis or valkey
		Driver string `env:"CACHE_DRIVER" env-default:"redis" yaml:"driver"`
		// Addr is the host:port of the cache server
		Addr string `env:"CACHE_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for cache authentication
		Password string `env:"CACHE_PASSWORD" yaml:"password"`
		// DB is the logical database index
		DB int `env:"CACHE_DB" env-default:"0" yaml:"db"`
		// TTL is how long a cached response is served before it is recomputed
		TTL time.Duration `env:"CACHE_TTL" env-default:"1h" yaml:"ttl"`
		// KeyPrefix namespaces cache keys
		KeyPrefix string `env:"CACHE_KEY_PREFIX" env-default:"brewery:http:" yaml:"keyPrefix"`
		// Coalesce collapses concurrent identical misses into one downstream call
		Coalesce bool `env:"CACHE_COALESCE" env-default:"false" yaml:"coalesce"`
		// KeyByHost adds the request host to cache keys
		KeyByHost bool `env:"CACHE_KEY_BY_HOST" env-default:"false" yaml:"keyByHost"`
	} `yaml:"cache"`

	// Region configures how the request host maps to a state scope
	Region struct {
		// RootDomain is the canonical domain state subdomains hang off
		RootDomain string `env:"REGION_ROOT_DOMAIN" env-default:"example.com" yaml:"rootDomain"`
		// Scheme is used to build the base URL of a scope
		Scheme string `env:"REGION_SCHEME" env-default:"https" yaml:"scheme"`
		// OverrideParam is the query parameter that forces a scope outside production
		OverrideParam string `env:"REGION_OVERRIDE_PARAM" env-default:"state" yaml:"overrideParam"`
	} `yaml:"region"`

	// Search contains the limits of the read endpoints
	Search struct {
		// CandidateLimit caps the rows returned by the bounding-box prefilter
		CandidateLimit uint `env:"SEARCH_CANDIDATE_LIMIT" env-default:"100" yaml:"candidateLimit"`
		// ResultLimit caps the ranked nearby results
		ResultLimit int `env:"SEARCH_RESULT_LIMIT" env-default:"50" yaml:"resultLimit"`
		// DefaultRadiusMiles is used when a nearby request omits the radius
		DefaultRadiusMiles float64 `env:"SEARCH_DEFAULT_RADIUS_MILES" env-default:"50" yaml:"defaultRadiusMiles"`
		// SearchLimit caps text search and listing results
		SearchLimit uint `env:"SEARCH_LIMIT" env-default:"100" yaml:"searchLimit"`
	} `yaml:"search"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// IsProduction reports whether the configured environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load env file: %w", err)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultEnvFile         = ".env"
	defaultAddress         = ":8080"
	defaultBasePath        = "/"
	defaultEnvironment     = "Development"
	defaultLogLevel        = "info"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config captures runtime configuration for the catalogue binaries.
type Config struct {
	Server       ServerConfig
	Environment  string
	ProductsFile string
	LogLevel     string
	TUILogFile   string
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Address         string
	BasePath        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration from defaults, an optional .env file and the
// environment, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	address := stringWithDefault(lookup, "CATALOG_HTTP_ADDR", "")
	if address == "" {
		// Cloud Run style PORT fallback.
		if port := stringWithDefault(lookup, "PORT", ""); port != "" {
			address = ":" + port
		}
	}
	if address == "" {
		address = defaultAddress
	}

	cfg := Config{
		Server: ServerConfig{
			Address:         address,
			BasePath:        NormalizeBasePath(stringWithDefault(lookup, "CATALOG_BASE_PATH", defaultBasePath)),
			ReadTimeout:     durationWithDefault(lookup, "CATALOG_HTTP_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "CATALOG_HTTP_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "CATALOG_HTTP_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "CATALOG_HTTP_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Environment:  stringWithDefault(lookup, "CATALOG_ENV", defaultEnvironment),
		ProductsFile: strings.TrimSpace(stringWithDefault(lookup, "CATALOG_PRODUCTS_FILE", "")),
		LogLevel:     strings.ToLower(strings.TrimSpace(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel))),
		TUILogFile:   strings.TrimSpace(stringWithDefault(lookup, "CATALOG_TUI_LOG", "")),
	}

	return cfg, nil
}

// NormalizeBasePath returns a path with a leading slash and no trailing slash,
// or "/" for the root.
func NormalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: scan %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

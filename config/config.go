package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Intent resolution
	Assistant AssistantConfig

	// Access control and protection
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Websocket WebsocketConfig

	// Observability
	Metrics MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	// Path of the SQLite file holding the dynamic intent catalog.
	Path string
}

type AssistantConfig struct {
	IntentsPath    string
	UseML          bool
	ModelPath      string
	DimensionsPath string
	// SeedOnStart copies missing intents from IntentsPath into the database at startup.
	SeedOnStart bool
	// RNGSeed makes response selection reproducible when non-zero.
	RNGSeed uint64
}

type AdminConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	ChatPerMin int
}

type WebsocketConfig struct {
	AllowedOrigins []string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper.
// The config file is config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file instead of the search path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Database.Path = v.GetString("database.path")

	// Assistant. The flat variables are the names older deployments export.
	cfg.Assistant.IntentsPath = v.GetString("assistant.intents_path")
	cfg.Assistant.UseML = v.GetBool("assistant.use_ml")
	cfg.Assistant.ModelPath = v.GetString("assistant.model_path")
	cfg.Assistant.DimensionsPath = v.GetString("assistant.dimensions_path")
	cfg.Assistant.SeedOnStart = v.GetBool("assistant.seed_on_start")
	cfg.Assistant.RNGSeed = v.GetUint64("assistant.rng_seed")
	if p := v.GetString("intents_path"); p != "" {
		cfg.Assistant.IntentsPath = p
	}
	if v.IsSet("use_ml") {
		cfg.Assistant.UseML = v.GetBool("use_ml")
	}
	if p := v.GetString("ml_model_path"); p != "" {
		cfg.Assistant.ModelPath = p
	}
	if p := v.GetString("ml_dimensions_path"); p != "" {
		cfg.Assistant.DimensionsPath = p
	}

	cfg.Admin.APIKey = expandEnvVar(v, v.GetString("admin.api_key"))
	cfg.RateLimit.ChatPerMin = v.GetInt("rate_limit.chat_per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.Websocket.AllowedOrigins = splitList(v.GetStringSlice("websocket.allowed_origins"))

	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Path = v.GetString("metrics.path")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.Assistant.IntentsPath == "" {
		return errors.New("assistant.intents_path is required")
	}
	if c.Assistant.UseML && (c.Assistant.ModelPath == "" || c.Assistant.DimensionsPath == "") {
		return errors.New("assistant.model_path and assistant.dimensions_path are required when assistant.use_ml is set")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "data/gems.db")

	v.SetDefault("assistant.intents_path", "data/intents.json")
	v.SetDefault("assistant.use_ml", false)
	v.SetDefault("assistant.model_path", "data/chatbot_model.json")
	v.SetDefault("assistant.dimensions_path", "data/dimensions.json")
	v.SetDefault("assistant.seed_on_start", false)
	v.SetDefault("assistant.rng_seed", 0)

	v.SetDefault("rate_limit.chat_per_min", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// expandEnvVar expands values written as ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList flattens comma separated entries and drops blanks.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root service configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
	Groq    GroqConfig    `yaml:"groq"`
	Dataset DatasetConfig `yaml:"dataset"`
	Session SessionConfig `yaml:"session"`
	NATS    NATSConfig    `yaml:"nats"`
	CORS    CORSConfig    `yaml:"cors"`
	Log     LogConfig     `yaml:"log"`
}

// ServiceConfig holds service identity settings.
type ServiceConfig struct {
	Name    string `yaml:"name"     env:"SERVICE_NAME" env-default:"bodhs-bot"`
	BotName string `yaml:"bot_name" env:"BOT_NAME"     env-default:"BoDH-S"`
	Version string `yaml:"version"  env:"BOT_VERSION"  env-default:"1.0"`

	// SecretKey is consumed by the chat-widget framework for session
	// signing. The bot logic itself never reads it.
	SecretKey string `yaml:"secret_key" env:"SECRET_KEY" env-default:"bodhs-2025"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// GroqConfig holds chat-completion API settings.
//
// APIKey deliberately has no env-required tag: a missing key must not fail
// config loading — the service starts in degraded mode instead and every
// functional endpoint reports itself offline.
type GroqConfig struct {
	APIKey      string        `yaml:"api_key"     env:"GROQ_API_KEY"`
	Model       string        `yaml:"model"       env:"GROQ_MODEL"       env-default:"llama-3.3-70b-versatile"`
	BaseURL     string        `yaml:"base_url"    env:"GROQ_BASE_URL"    env-default:"https://api.groq.com/openai/v1"`
	Timeout     time.Duration `yaml:"timeout"     env:"GROQ_TIMEOUT"     env-default:"30s"`
	MaxTokens   int           `yaml:"max_tokens"  env:"GROQ_MAX_TOKENS"  env-default:"400"`
	Temperature float64       `yaml:"temperature" env:"GROQ_TEMPERATURE" env-default:"0.3"`
	TopP        float64       `yaml:"top_p"       env:"GROQ_TOP_P"       env-default:"0.9"`
}

// DatasetConfig holds corpus file locations and sampling limits.
type DatasetConfig struct {
	Dir            string `yaml:"dir"             env:"DATASET_DIR"             env-default:"datasets"`
	DictionaryFile string `yaml:"dictionary_file" env:"DATASET_DICTIONARY_FILE" env-default:"dictionary.json"`
	HinglishFile   string `yaml:"hinglish_file"   env:"DATASET_HINGLISH_FILE"   env-default:"hinglish_upload_v1.json"`
	SampleFile     string `yaml:"sample_file"     env:"DATASET_SAMPLE_FILE"     env-default:"examples.json"`
	CorpusLimit    int    `yaml:"corpus_limit"    env:"DATASET_CORPUS_LIMIT"    env-default:"200"`
	SampleSize     int    `yaml:"sample_size"     env:"DATASET_SAMPLE_SIZE"     env-default:"5"`
}

// SessionConfig selects the per-user mode store backend.
type SessionConfig struct {
	Backend  string `yaml:"backend"   env:"SESSION_BACKEND" env-default:"memory"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"       env-default:"redis://localhost:6379/0"`

	// TTL 0 means sessions never expire, matching the memory backend.
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"0s"`
}

// NATSConfig holds the optional NATS inbound transport settings.
// An empty URL disables the transport.
type NATSConfig struct {
	URL     string        `yaml:"url"     env:"NATS_URL"`
	Subject string        `yaml:"subject" env:"NATS_SUBJECT" env-default:"bodhs.webhook"`
	Timeout time.Duration `yaml:"timeout" env:"NATS_TIMEOUT" env-default:"30s"`
}

// CORSConfig holds CORS settings for the HTTP surface.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Origins returns the allowed origins as a slice.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks enumerated and bounded fields.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	switch strings.ToLower(c.Session.Backend) {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session backend %q (want memory or redis)", c.Session.Backend)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Dataset.CorpusLimit < 1 {
		return fmt.Errorf("dataset corpus limit must be positive, got %d", c.Dataset.CorpusLimit)
	}
	if c.Dataset.SampleSize < 1 {
		return fmt.Errorf("dataset sample size must be positive, got %d", c.Dataset.SampleSize)
	}
	if c.Groq.MaxTokens < 1 {
		return fmt.Errorf("groq max tokens must be positive, got %d", c.Groq.MaxTokens)
	}

	return nil
}

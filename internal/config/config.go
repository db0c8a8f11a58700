package config

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Upload UploadConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host             string `env:"HOST" envDefault:"127.0.0.1"`
	Port             string `env:"PORT" envDefault:"8001"`
	Env              string `env:"ENV" envDefault:"development"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

type LLMConfig struct {
	Provider       string        `env:"LLM_PROVIDER" envDefault:"groq"`
	RequestTimeout time.Duration `env:"LLM_REQUEST_TIMEOUT" envDefault:"60s"`
	Groq           GroqConfig
	Gemini         GeminiConfig
}

type GroqConfig struct {
	APIKey  string   `env:"GROQ_API_KEY"`
	BaseURL string   `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Models  []string `env:"GROQ_MODELS" envSeparator:"," envDefault:"llama3-8b-8192,llama3-70b-8192"`
}

type GeminiConfig struct {
	APIKey string   `env:"GEMINI_API_KEY"`
	Models []string `env:"GEMINI_MODELS" envSeparator:"," envDefault:"gemini-2.5-flash,gemini-2.5-pro"`
}

type UploadConfig struct {
	MaxFileSize int64 `env:"MAX_FILE_SIZE" envDefault:"10485760"`
}

type LogConfig struct {
	JSON  bool `env:"LOG_JSON" envDefault:"false"`
	Debug bool `env:"LOG_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and defaults.")
	}

	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	switch cfg.LLM.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	cfg.LLM.Groq.Models = cleanModels(cfg.LLM.Groq.Models)
	cfg.LLM.Gemini.Models = cleanModels(cfg.LLM.Gemini.Models)

	return &cfg, nil
}

func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Env, "development")
}

// Models returns the ordered model identifiers for the active provider.
func (c *Config) Models() []string {
	if c.LLM.Provider == ProviderGemini {
		return c.LLM.Gemini.Models
	}
	return c.LLM.Groq.Models
}

// APIKey returns the credential for the active provider.
func (c *Config) APIKey() string {
	if c.LLM.Provider == ProviderGemini {
		return c.LLM.Gemini.APIKey
	}
	return c.LLM.Groq.APIKey
}

func cleanModels(models []string) []string {
	cleaned := make([]string, 0, len(models))
	for _, m := range models {
		if m = strings.TrimSpace(m); m != "" {
			cleaned = append(cleaned, m)
		}
	}
	return cleaned
}

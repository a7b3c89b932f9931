package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Portfolio chat
	Chat      ChatConfig
	Session   SessionConfig
	Redis     RedisConfig
	Qdrant    QdrantConfig
	Embedding EmbeddingConfig
	Voyage    VoyageConfig
	Ollama    OllamaConfig
	Profile   ProfileConfig
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

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// ChatConfig tunes the conversational router.
type ChatConfig struct {
	HistoryTTL       time.Duration
	HistoryWindow    int
	RetrievalTopK    int
	BlockedTerms     []string
	MaxMessageLength int
}

// SessionConfig selects the session history backend.
type SessionConfig struct {
	Driver    string // memory or redis
	KeyPrefix string
}

type RedisConfig struct {
	URL      string // redis:// or rediss:// URL, takes precedence over Addr
	Addr     string
	Password string
	DB       int
}

type QdrantConfig struct {
	Host           string
	Port           int
	APIKey         string
	UseTLS         bool
	CollectionName string
	VectorSize     int
}

// EmbeddingConfig selects the embedding backend used for retrieval and ingest.
type EmbeddingConfig struct {
	Provider  string // voyage or ollama
	BatchSize int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	Host  string
	Model string
}

// ProfileConfig feeds the greeting and contact replies.
type ProfileConfig struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
	cfg.CORS.AllowedOrigins = getStringList(v, "cors.allowed_origins")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	// Chat
	ttlSeconds := v.GetInt("chat.history_ttl_seconds")
	if legacy := v.GetInt("chat_deletion_time"); legacy > 0 {
		ttlSeconds = legacy
	}
	cfg.Chat.HistoryTTL = time.Duration(ttlSeconds) * time.Second
	cfg.Chat.HistoryWindow = v.GetInt("chat.history_window")
	cfg.Chat.RetrievalTopK = v.GetInt("chat.retrieval_top_k")
	cfg.Chat.BlockedTerms = getStringList(v, "chat.blocked_terms")
	cfg.Chat.MaxMessageLength = v.GetInt("chat.max_message_length")

	// Session store
	cfg.Session.Driver = strings.ToLower(v.GetString("session.driver"))
	cfg.Session.KeyPrefix = v.GetString("session.key_prefix")
	cfg.Redis.URL = v.GetString("redis.url")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Retrieval
	cfg.Qdrant.Host = v.GetString("qdrant.host")
	cfg.Qdrant.Port = v.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = v.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = v.GetBool("qdrant.use_tls")
	cfg.Qdrant.CollectionName = v.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = v.GetInt("qdrant.vector_size")

	cfg.Embedding.Provider = strings.ToLower(v.GetString("embedding.provider"))
	cfg.Embedding.BatchSize = v.GetInt("embedding.batch_size")
	cfg.Voyage.APIKey = expandEnvVar(v, v.GetString("voyage.api_key"))
	cfg.Voyage.Model = v.GetString("voyage.model")
	cfg.Ollama.Host = v.GetString("ollama.host")
	cfg.Ollama.Model = v.GetString("ollama.model")

	// Profile
	cfg.Profile.Name = v.GetString("profile.name")
	cfg.Profile.Email = v.GetString("profile.email")
	cfg.Profile.Phone = v.GetString("profile.phone")
	cfg.Profile.LinkedIn = v.GetString("profile.linkedin")
	cfg.Profile.GitHub = v.GetString("profile.github")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Single-provider deployments configured only through env
	if len(cfg.LLM.Providers) == 0 {
		if p, ok := legacyGroqProvider(v); ok {
			cfg.LLM.Providers = append(cfg.LLM.Providers, p)
		}
	}

	if err := validateChatConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst", 10)

	// Chat defaults
	v.SetDefault("chat.history_ttl_seconds", 600)
	v.SetDefault("chat.history_window", 5)
	v.SetDefault("chat.retrieval_top_k", 3)
	v.SetDefault("chat.blocked_terms", []string{"adult"})
	v.SetDefault("chat.max_message_length", 2000)
	v.SetDefault("session.driver", "memory")
	v.SetDefault("session.key_prefix", "chat_history:")

	// Retrieval defaults
	v.SetDefault("qdrant.host", "localhost")
	v.SetDefault("qdrant.port", 6334)
	v.SetDefault("qdrant.collection_name", "chatbot_portfolio")
	v.SetDefault("qdrant.vector_size", 1024)
	v.SetDefault("embedding.provider", "voyage")
	v.SetDefault("embedding.batch_size", 64)
	v.SetDefault("ollama.host", "http://localhost:11434")
	v.SetDefault("ollama.model", "all-minilm")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
}

// legacyGroqProvider builds a provider from the GROQ_API_KEY / LLM_MODEL
// variables the first deployment used.
func legacyGroqProvider(v *viper.Viper) (ProviderConfig, bool) {
	key := v.GetString("groq_api_key")
	if key == "" {
		key = v.GetString("groc_llm_api")
	}
	if key == "" {
		return ProviderConfig{}, false
	}

	model := v.GetString("llm_model")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	return ProviderConfig{
		Name:     "groq",
		Enabled:  true,
		Priority: 1,
		APIKey:   key,
		Model:    model,
		Timeout:  "30s",
	}, true
}

func validateChatConfig(cfg *Config) error {
	if cfg.Chat.HistoryTTL <= 0 {
		return fmt.Errorf("chat.history_ttl_seconds must be positive")
	}
	if cfg.Chat.HistoryWindow <= 0 {
		return fmt.Errorf("chat.history_window must be positive")
	}
	if cfg.Chat.RetrievalTopK <= 0 {
		return fmt.Errorf("chat.retrieval_top_k must be positive")
	}
	switch cfg.Session.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("session.driver must be memory or redis, got %q", cfg.Session.Driver)
	}
	return nil
}

// ValidateLLMConfig validates the LLM configuration
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// getStringList reads a list from YAML or a comma separated env value.
func getStringList(v *viper.Viper, key string) []string {
	var items []string
	switch raw := v.Get(key).(type) {
	case string:
		items = strings.Split(raw, ",")
	case []string:
		items = raw
	case []interface{}:
		for _, it := range raw {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

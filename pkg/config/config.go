package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Providers   ProvidersConfig   `mapstructure:"providers"`
	Moderation  ModerationConfig  `mapstructure:"moderation"`
	Generation  GenerationConfig  `mapstructure:"generation"`
	WebSearch   WebSearchConfig   `mapstructure:"websearch"`
	Publication PublicationConfig `mapstructure:"publication"`
}

type AppConfig struct {
	Name         string `mapstructure:"name"`
	AdminEmail   string `mapstructure:"admin_email"`
	ItemsPerUser int    `mapstructure:"items_per_user"`
	LogLevel     string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	// SecretKey enables bearer token auth on /api/v1 when set.
	SecretKey string `mapstructure:"secret_key"`
	BodyLimit int    `mapstructure:"body_limit"`
	// MaxWSConnections caps concurrent streaming moderation sockets.
	MaxWSConnections int      `mapstructure:"max_ws_connections"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ModerationConfig struct {
	DefaultProviders []string          `mapstructure:"default_providers"`
	Threshold        float64           `mapstructure:"threshold"`
	BatchConcurrency int               `mapstructure:"batch_concurrency"`
	CacheTTLSeconds  int               `mapstructure:"cache_ttl_seconds"`
	Azure            AzureSafetyConfig `mapstructure:"azure"`
	NeuralTrust      NeuralTrustConfig `mapstructure:"neuraltrust"`
	Bedrock          GuardrailConfig   `mapstructure:"bedrock"`
}

type AzureSafetyConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type NeuralTrustConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

// GuardrailConfig selects the Bedrock guardrail; AWS credentials come from providers.bedrock.
type GuardrailConfig struct {
	GuardrailID string `mapstructure:"guardrail_id"`
	Version     string `mapstructure:"version"`
}

type GenerationConfig struct {
	ProviderOrder []string `mapstructure:"provider_order"`
	MaxTokens     int      `mapstructure:"max_tokens"`
	Temperature   float64  `mapstructure:"temperature"`
}

type WebSearchConfig struct {
	TavilyAPIKey    string  `mapstructure:"tavily_api_key"`
	BaseURL         string  `mapstructure:"base_url"`
	RatePerSecond   float64 `mapstructure:"rate_per_second"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds"`
}

type PublicationConfig struct {
	RatePerMinute int         `mapstructure:"rate_per_minute"`
	Kafka         KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		setDefaultValues()
		return fmt.Errorf("warning: could not load main config file: %v", err)
	}
	setDefaultValues()
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// env only
			if uerr := v.Unmarshal(out, decodeHooks()); uerr != nil {
				return fmt.Errorf("failed to unmarshal %s config: %w", fileName, uerr)
			}
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := v.Unmarshal(out, decodeHooks()); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// decodeHooks lets list settings come from the environment as comma separated
// values, e.g. MODERATION_DEFAULT_PROVIDERS=openai,local.
func decodeHooks() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// bindEnv registers keys that have no yaml entry so AutomaticEnv can see them on Unmarshal.
func bindEnv(v *viper.Viper) {
	keys := []string{
		"app.name", "app.log_level",
		"server.port", "server.metrics_port", "server.secret_key", "server.allow_origins",
		"database.host", "database.port", "database.user", "database.password", "database.name", "database.sslmode",
		"redis.host", "redis.port", "redis.password", "redis.db",
		"providers.openai.api_key", "providers.anthropic.api_key", "providers.gemini.api_key",
		"providers.azure.api_key", "providers.azure.endpoint",
		"providers.bedrock.region", "providers.bedrock.access_key", "providers.bedrock.secret_key",
		"moderation.default_providers", "generation.provider_order",
		"moderation.azure.endpoint", "moderation.azure.api_key",
		"moderation.neuraltrust.base_url", "moderation.neuraltrust.token",
		"moderation.bedrock.guardrail_id", "moderation.bedrock.version",
		"websearch.tavily_api_key",
		"publication.kafka.host", "publication.kafka.port", "publication.kafka.topic",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	// flat names kept from the legacy .env files
	_ = v.BindEnv("websearch.tavily_api_key", "WEBSEARCH_TAVILY_API_KEY", "TAVILY_API_KEY")
	_ = v.BindEnv("providers.openai.api_key", "PROVIDERS_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("providers.anthropic.api_key", "PROVIDERS_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("providers.gemini.api_key", "PROVIDERS_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("app.log_level", "APP_LOG_LEVEL", "LOG_LEVEL")
}

func setDefaultValues() {
	if globalConfig.App.Name == "" {
		globalConfig.App.Name = "Skyent API"
	}
	if globalConfig.App.AdminEmail == "" {
		globalConfig.App.AdminEmail = "admin@skyent.dev"
	}
	if globalConfig.App.ItemsPerUser == 0 {
		globalConfig.App.ItemsPerUser = 50
	}
	if globalConfig.App.LogLevel == "" {
		globalConfig.App.LogLevel = "INFO"
	}
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8000
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Server.BodyLimit == 0 {
		globalConfig.Server.BodyLimit = 8 * 1024 * 1024
	}
	if globalConfig.Server.MaxWSConnections == 0 {
		globalConfig.Server.MaxWSConnections = 100
	}
	if len(globalConfig.Server.AllowOrigins) == 0 {
		globalConfig.Server.AllowOrigins = []string{"*"}
	}
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Database.Port == 0 {
		globalConfig.Database.Port = 5432
	}
	if globalConfig.Redis.Port == 0 {
		globalConfig.Redis.Port = 6379
	}
	if len(globalConfig.Moderation.DefaultProviders) == 0 {
		globalConfig.Moderation.DefaultProviders = []string{"openai", "local"}
	}
	if globalConfig.Moderation.Threshold == 0 {
		globalConfig.Moderation.Threshold = 0.5
	}
	if globalConfig.Moderation.BatchConcurrency == 0 {
		globalConfig.Moderation.BatchConcurrency = 4
	}
	if globalConfig.Moderation.Bedrock.Version == "" {
		globalConfig.Moderation.Bedrock.Version = "DRAFT"
	}
	if globalConfig.Moderation.CacheTTLSeconds == 0 {
		globalConfig.Moderation.CacheTTLSeconds = 3600
	}
	if len(globalConfig.Generation.ProviderOrder) == 0 {
		globalConfig.Generation.ProviderOrder = []string{"openai", "anthropic", "gemini", "azure", "bedrock"}
	}
	if globalConfig.Generation.MaxTokens == 0 {
		globalConfig.Generation.MaxTokens = 2000
	}
	if globalConfig.Generation.Temperature == 0 {
		globalConfig.Generation.Temperature = 0.7
	}
	if globalConfig.WebSearch.BaseURL == "" {
		globalConfig.WebSearch.BaseURL = "https://api.tavily.com"
	}
	if globalConfig.WebSearch.RatePerSecond == 0 {
		globalConfig.WebSearch.RatePerSecond = 2
	}
	if globalConfig.WebSearch.CacheTTLSeconds == 0 {
		globalConfig.WebSearch.CacheTTLSeconds = 900
	}
	if globalConfig.Publication.RatePerMinute == 0 {
		globalConfig.Publication.RatePerMinute = 30
	}
}

func GetConfig() *Config {
	return &globalConfig
}

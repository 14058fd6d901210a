package config

// ProviderConfig holds the credentials and default model of one LLM provider.
type ProviderConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
}

type BedrockConfig struct {
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
	RoleARN      string `mapstructure:"role_arn"`
	Model        string `mapstructure:"model"`
}

// ProvidersConfig represents the configuration for all providers
type ProvidersConfig struct {
	OpenAI    ProviderConfig `mapstructure:"openai"`
	Anthropic ProviderConfig `mapstructure:"anthropic"`
	Gemini    ProviderConfig `mapstructure:"gemini"`
	Azure     ProviderConfig `mapstructure:"azure"`
	Bedrock   BedrockConfig  `mapstructure:"bedrock"`
}

// Configured reports whether the named provider has credentials.
func (p ProvidersConfig) Configured(name string) bool {
	switch name {
	case "openai":
		return p.OpenAI.APIKey != ""
	case "anthropic":
		return p.Anthropic.APIKey != ""
	case "gemini":
		return p.Gemini.APIKey != ""
	case "azure":
		return p.Azure.Endpoint != ""
	case "bedrock":
		return p.Bedrock.Region != "" && (p.Bedrock.AccessKey != "" || p.Bedrock.RoleARN != "")
	default:
		return false
	}
}

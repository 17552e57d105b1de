package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port            string `mapstructure:"port"`
	Provider        string `mapstructure:"provider"`
	Model           string `mapstructure:"model"`
	AIEndpoint      string `mapstructure:"ai_endpoint"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `mapstructure:"OPENAI_API_KEY"`
	UploadDir       string `mapstructure:"upload_dir"`
	MaxContextChars int    `mapstructure:"max_context_chars"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "5000")
	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("model", "gemini-1.5-flash")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("max_context_chars", 3000)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables. A missing API key is not an error here;
	// it surfaces as a classified answer on the first completion call.
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("port", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Bearer token required on /api routes. Empty disables the check.
	AccessToken string `mapstructure:"access_token"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Database struct {
	Type string `mapstructure:"type"`
	Path string `mapstructure:"path"`
}

type Source struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Report struct {
	OutputDir string `mapstructure:"output_dir"`
	// Entries shown per section in the rendered HTML. The engine always
	// ranks the full category; truncation is display-only.
	TopN      int `mapstructure:"top_n"`
	FreeLimit int `mapstructure:"free_limit"`
	// Token counts behind the per-model conversation cost estimate.
	CostInputTokens  int `mapstructure:"cost_input_tokens"`
	CostOutputTokens int `mapstructure:"cost_output_tokens"`
}

type Classify struct {
	// Extra per-category regex patterns merged with the built-in keyword
	// table. Keys are category labels, values ECMAScript regexes.
	ExtraPatterns map[string][]string `mapstructure:"extra_patterns"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Log      Log      `mapstructure:"log"`
	Database Database `mapstructure:"database"`
	Source   Source   `mapstructure:"source"`
	Report   Report   `mapstructure:"report"`
	Classify Classify `mapstructure:"classify"`
}

var AppConfig Config

func Load(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath("data")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(APP_NAME)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		log.Infof("Using config file: %s", viper.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Infof("Config file not found, creating default config")
			if err := os.MkdirAll("data", 0755); err != nil {
				log.Errorf("Failed to create data directory: %v", err)
			}
			if err := viper.SafeWriteConfigAs("data/config.json"); err != nil {
				log.Errorf("Failed to create default config: %v", err)
			}
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// OPENROUTER_API_KEY is the key name the upstream ecosystem uses, so
	// honor it even though it lacks the app env prefix.
	if AppConfig.Source.APIKey == "" {
		AppConfig.Source.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.access_token", "")
	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.path", "data/data.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("source.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("source.api_key", "")
	viper.SetDefault("report.output_dir", "reports")
	viper.SetDefault("report.top_n", 10)
	viper.SetDefault("report.free_limit", 3)
	viper.SetDefault("report.cost_input_tokens", 1000)
	viper.SetDefault("report.cost_output_tokens", 1000)
}

package config

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	UploadDir  string
	ResultsDir string

	// Optional YAML file overriding the built-in tool catalog.
	ToolCatalogPath string

	CompletionAPIKey   string
	CompletionEndpoint string
	CompletionModel    string

	DiscordToken     string
	DiscordChannelID string
}

// LoadConfig reads blitzscan.yaml from the usual locations and applies
// BLITZSCAN_* environment overrides. A missing config file is fine; the
// defaults describe a local development setup.
func LoadConfig() *Config {
	v := viper.New()
	v.SetConfigName("blitzscan")
	v.SetConfigType("yaml")
	for _, path := range []string{".", "./config", "/etc/blitzscan", "$HOME/.blitzscan"} {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix("BLITZSCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("listen_addr", ":5000")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "blitzscan")
	v.SetDefault("db.password", "blitzscan")
	v.SetDefault("db.name", "blitz_scan")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("results_dir", "./results")
	v.SetDefault("tool_catalog", "")
	v.SetDefault("completion.endpoint", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("completion.model", "gpt-3.5-turbo")
	v.SetDefault("completion.api_key", "")
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.channel_id", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("Error reading config file: %v", err)
		}
	} else {
		log.Infof("Loaded config file: %s", v.ConfigFileUsed())
	}

	return &Config{
		ListenAddr:         v.GetString("listen_addr"),
		DBHost:             v.GetString("db.host"),
		DBPort:             v.GetInt("db.port"),
		DBUser:             v.GetString("db.user"),
		DBPassword:         v.GetString("db.password"),
		DBName:             v.GetString("db.name"),
		UploadDir:          v.GetString("upload_dir"),
		ResultsDir:         v.GetString("results_dir"),
		ToolCatalogPath:    v.GetString("tool_catalog"),
		CompletionAPIKey:   v.GetString("completion.api_key"),
		CompletionEndpoint: v.GetString("completion.endpoint"),
		CompletionModel:    v.GetString("completion.model"),
		DiscordToken:       v.GetString("discord.token"),
		DiscordChannelID:   v.GetString("discord.channel_id"),
	}
}

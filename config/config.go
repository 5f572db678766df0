package config

import (
	"github.com/spf13/viper"
)

// Configuration holds everything the server and the journal client need.
// Values come from a .env file in the working directory or from the
// environment; environment wins.
type Configuration struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	LogPath     string `mapstructure:"LOG_PATH"`

	// Local record store (sqlite)
	DBPath string `mapstructure:"DB_PATH"`

	// Hosted models
	OpenAIAPIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel      string `mapstructure:"OPENAI_MODEL"`
	OpenAIImageModel string `mapstructure:"OPENAI_IMAGE_MODEL"`

	// Relay base URL used by the journal client
	APIURL string `mapstructure:"API_URL"`
}

// Load reads the configuration from path (directory containing .env) and
// the environment. A missing .env file is fine; env vars still apply.
func Load(path string) (Configuration, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Configuration{}, err
		}
	}

	var c Configuration
	if err := viper.Unmarshal(&c); err != nil {
		return Configuration{}, err
	}

	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.DBPath == "" {
		c.DBPath = "db/journal.db"
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4.1-mini"
	}
	if c.OpenAIImageModel == "" {
		c.OpenAIImageModel = "gpt-image-1"
	}
	if c.APIURL == "" {
		c.APIURL = "http://localhost:" + c.ServerPort
	}

	return c, nil
}

package server

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the server settings. Values come from an optional
// config.yaml next to the binary; PORT in the environment overrides
// the configured port.
type Config struct {
	Port        string `mapstructure:"port"`
	BoardWidth  int    `mapstructure:"board_width"`
	BoardHeight int    `mapstructure:"board_height"`
}

const maxBoardSide = 99

func LoadConfig() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("port", "8080")
	viper.SetDefault("board_width", 10)
	viper.SetDefault("board_height", 10)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading config: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("parsing config: %v", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if cfg.BoardWidth < 1 || cfg.BoardWidth > maxBoardSide ||
		cfg.BoardHeight < 1 || cfg.BoardHeight > maxBoardSide {
		log.Fatalf("board size %dx%d out of range", cfg.BoardWidth, cfg.BoardHeight)
	}
	return cfg
}

package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Proxy struct {
		URL            string `toml:"url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"proxy"`

	Draft struct {
		DSN  string `toml:"dsn"`
		Slot string `toml:"slot"`
	} `toml:"draft"`

	Metrics struct {
		Addr string `toml:"addr"`
	} `toml:"metrics"`

	Display struct {
		TimestampFormat string `toml:"timestamp_format"`
	} `toml:"display"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Proxy.URL == "" {
		return nil, fmt.Errorf("proxy URL is not specified in config, use a value like http://localhost:3001/api")
	}
	if config.Proxy.TimeoutSeconds <= 0 {
		config.Proxy.TimeoutSeconds = 30
	}
	if config.Display.TimestampFormat == "" {
		config.Display.TimestampFormat = "02/01/2006 15:04"
	}

	logger.Debug.Printf("Loaded config: proxy=%s draft_dsn=%q", config.Proxy.URL, config.Draft.DSN)

	return &config, nil
}

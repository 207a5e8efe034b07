// Package config loads and validates the album configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultSendmailPath = "/usr/sbin/sendmail"

// Load reads a single YAML configuration file. Validation failures are fatal
// at startup, before any network activity.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

func setDefaults(config *Config) {
	if config.SendmailPath == "" {
		config.SendmailPath = defaultSendmailPath
	}
}

func validate(config *Config) error {
	if config.AlbumName == "" {
		return fmt.Errorf("album_name is required")
	}
	if config.AlbumID == "" {
		return fmt.Errorf("album_id is required")
	}
	if len(config.Recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	for i, recipient := range config.Recipients {
		if recipient == "" {
			return fmt.Errorf("recipient at index %d is empty", i)
		}
	}
	if config.SenderAddress == "" {
		return fmt.Errorf("sender_address is required")
	}
	if config.StateFile == "" {
		return fmt.Errorf("state_file is required")
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/quoridor.yaml
var defaultQuoridorYAML []byte

// DefaultQuoridorConfig returns the classic two-player configuration.
func DefaultQuoridorConfig() QuoridorConfig {
	return QuoridorConfig{
		Board: BoardConfig{
			Size: 9,
		},
		Players: PlayersConfig{
			Count:     2,
			WallsEach: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultQuoridorYAML
}

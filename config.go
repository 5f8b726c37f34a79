package rdt

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config carries the receiver parameters. Loss rate, corruption rate
// and max delay are forwarded verbatim to the relay in the handshake
// and otherwise unused by receiver logic.
type Config struct {
	RelayAddress   string
	ConnectionID   string
	LossRate       float64
	CorruptRate    float64
	MaxDelay       int
	ConnectTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		RelayAddress:   DefaultRelayAddress,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

type fileConfig struct {
	RelayAddress   string  `toml:"relay_address"`
	ConnectTimeout string  `toml:"connect_timeout"`
	ConnectionID   string  `toml:"connection_id"`
	LossRate       float64 `toml:"loss_rate"`
	CorruptRate    float64 `toml:"corrupt_rate"`
	MaxDelay       int     `toml:"max_delay"`
}

// LoadConfig reads a TOML file into a Config, starting from defaults.
// Absent keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load receiver config: %w", err)
	}

	if meta.IsDefined("relay_address") && raw.RelayAddress != "" {
		cfg.RelayAddress = raw.RelayAddress
	}
	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(raw.ConnectTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}
	if meta.IsDefined("connection_id") {
		cfg.ConnectionID = raw.ConnectionID
	}
	if meta.IsDefined("loss_rate") {
		cfg.LossRate = raw.LossRate
	}
	if meta.IsDefined("corrupt_rate") {
		cfg.CorruptRate = raw.CorruptRate
	}
	if meta.IsDefined("max_delay") {
		cfg.MaxDelay = raw.MaxDelay
	}
	return cfg, nil
}

// Validate checks the parameters against the ranges the relay accepts.
// The connection ID is not checked here; an empty one is filled with a
// generated identifier by the CLI.
func (cfg Config) Validate() error {
	if cfg.RelayAddress == "" {
		return fmt.Errorf("relay address must not be empty")
	}
	if cfg.LossRate < 0 || cfg.LossRate > 1 {
		return fmt.Errorf("loss rate %v outside [0.0, 1.0]", cfg.LossRate)
	}
	if cfg.CorruptRate < 0 || cfg.CorruptRate > 1 {
		return fmt.Errorf("corrupt rate %v outside [0.0, 1.0]", cfg.CorruptRate)
	}
	if cfg.MaxDelay < 0 || cfg.MaxDelay > 5 {
		return fmt.Errorf("max delay %d outside [0, 5]", cfg.MaxDelay)
	}
	if cfg.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive")
	}
	return nil
}

// Rdtrecv — receiving endpoint of a stop-and-wait reliable transfer.
//
// It connects to the relay service, requests a channel, then receives
// and acknowledges 30-byte frames from the paired sender until the
// stream ends, logging the reassembled data's checksum and the session
// counters.
//
// Usage:
//
//	rdtrecv [flags]
//	rdtrecv <connectionID> <lossRate> <corruptRate> <maxDelay>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	rdt "rdt-go"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		os.Exit(1)
	}

	if cfg.ConnectionID == "" {
		cfg.ConnectionID = uuid.NewString()
		logger.Info().Str("connection_id", cfg.ConnectionID).
			Msg("no connection ID given, generated one; start the sender with the same ID")
	}

	if err := rdt.NewSession(cfg, logger).Run(); err != nil {
		logger.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}

// parseArgs resolves the configuration from, in order of precedence:
// explicit flags, the positional form of the legacy tool, the -config
// file, built-in defaults.
func parseArgs(args []string) (rdt.Config, error) {
	flags := flag.NewFlagSet("rdtrecv", flag.ContinueOnError)
	configPath := flags.String("config", "", "optional TOML config file")
	addr := flags.String("addr", "", "relay address (host:port)")
	connectionID := flags.String("id", "", "connection identifier shared with the sender")
	lossRate := flags.Float64("loss", 0, "relay loss rate, 0.0 ~ 1.0")
	corruptRate := flags.Float64("corrupt", 0, "relay corruption rate, 0.0 ~ 1.0")
	maxDelay := flags.Int("delay", 0, "relay maximum delay in seconds, 0 ~ 5")
	timeout := flags.Duration("timeout", 0, "connection establishment timeout")
	if err := flags.Parse(args); err != nil {
		return rdt.Config{}, err
	}

	cfg := rdt.DefaultConfig()
	if *configPath != "" {
		loaded, err := rdt.LoadConfig(*configPath)
		if err != nil {
			return rdt.Config{}, err
		}
		cfg = loaded
	}

	// Positional form: <connectionID> <lossRate> <corruptRate> <maxDelay>
	switch flags.NArg() {
	case 0:
	case 4:
		pos := flags.Args()
		cfg.ConnectionID = pos[0]
		var err error
		if cfg.LossRate, err = strconv.ParseFloat(pos[1], 64); err != nil {
			return rdt.Config{}, fmt.Errorf("loss rate %q: %w", pos[1], err)
		}
		if cfg.CorruptRate, err = strconv.ParseFloat(pos[2], 64); err != nil {
			return rdt.Config{}, fmt.Errorf("corrupt rate %q: %w", pos[2], err)
		}
		if cfg.MaxDelay, err = strconv.Atoi(pos[3]); err != nil {
			return rdt.Config{}, fmt.Errorf("max delay %q: %w", pos[3], err)
		}
	default:
		return rdt.Config{}, fmt.Errorf(
			"expected no positional arguments or exactly four: <connectionID> <lossRate> <corruptRate> <maxDelay>")
	}

	// Explicit flags win over both the config file and positionals.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.RelayAddress = *addr
		case "id":
			cfg.ConnectionID = *connectionID
		case "loss":
			cfg.LossRate = *lossRate
		case "corrupt":
			cfg.CorruptRate = *corruptRate
		case "delay":
			cfg.MaxDelay = *maxDelay
		case "timeout":
			cfg.ConnectTimeout = *timeout
		}
	})

	return cfg, cfg.Validate()
}

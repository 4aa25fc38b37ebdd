// Package netconfig supplies the per-network endpoint configuration consumed
// by the command executor. Each supported network has a built-in default
// settings map; an optional JSON file shallow-overlays individual keys onto
// those defaults at load time. Nothing in this package is ever persisted.
package netconfig

import (
	"context"
	"errors"

	"github.com/spf13/viper"

	"github.com/vk/chainctl/internal/ctxlog"
)

// Network selects one of the built-in default variants.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// ErrUnrecognizedNetwork is returned for a network selector outside the
// three supported values. This signals a mistake by the embedding caller,
// not bad user input, and is never swallowed.
var ErrUnrecognizedNetwork = errors.New("netconfig: unrecognized network")

// LogSettings is the nested logging configuration block.
type LogSettings struct {
	Level     string `mapstructure:"level" json:"level"`
	Timestamp bool   `mapstructure:"timestamp" json:"timestamp"`
	Colorize  bool   `mapstructure:"colorize" json:"colorize"`
	Stringify bool   `mapstructure:"stringify" json:"stringify"`
}

// Settings is the flat endpoint configuration handed to the executor.
type Settings struct {
	APIURL              string      `mapstructure:"api_url" json:"api_url"`
	NodeURL             string      `mapstructure:"node_url" json:"node_url"`
	BroadcastServiceURL string      `mapstructure:"broadcast_service_url" json:"broadcast_service_url"`
	UTXOServiceURL      string      `mapstructure:"utxo_service_url" json:"utxo_service_url"`
	Logging             LogSettings `mapstructure:"log_config" json:"log_config"`
}

// Defaults returns the built-in settings for a network.
func Defaults(network Network) (Settings, error) {
	switch network {
	case Mainnet:
		return Settings{
			APIURL:              "https://api.chainid.org",
			NodeURL:             "https://node.chainid.org",
			BroadcastServiceURL: "https://broadcast.chainid.org",
			UTXOServiceURL:      "https://utxo.chainid.org",
			Logging:             LogSettings{Level: "info", Timestamp: true, Colorize: true},
		}, nil
	case Testnet:
		return Settings{
			APIURL:              "https://testnet-api.chainid.org",
			NodeURL:             "https://testnet-node.chainid.org",
			BroadcastServiceURL: "https://testnet-broadcast.chainid.org",
			UTXOServiceURL:      "https://testnet-utxo.chainid.org",
			Logging:             LogSettings{Level: "info", Timestamp: true, Colorize: true},
		}, nil
	case Regtest:
		return Settings{
			APIURL:              "http://localhost:16268",
			NodeURL:             "http://localhost:18332",
			BroadcastServiceURL: "http://localhost:16269",
			UTXOServiceURL:      "http://localhost:18332",
			Logging:             LogSettings{Level: "debug", Timestamp: true, Colorize: false},
		}, nil
	default:
		return Settings{}, ErrUnrecognizedNetwork
	}
}

// Load merges the network's built-in defaults with the JSON file at path,
// when there is one. A missing, unreadable, or malformed file leaves the
// defaults standing; the overlay is strictly best-effort and failures are
// reported only at debug level.
func Load(ctx context.Context, network Network, path string) (Settings, error) {
	logger := ctxlog.FromContext(ctx)

	defaults, err := Defaults(network)
	if err != nil {
		return Settings{}, err
	}

	if path == "" {
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("node_url", defaults.NodeURL)
	v.SetDefault("broadcast_service_url", defaults.BroadcastServiceURL)
	v.SetDefault("utxo_service_url", defaults.UTXOServiceURL)
	v.SetDefault("log_config.level", defaults.Logging.Level)
	v.SetDefault("log_config.timestamp", defaults.Logging.Timestamp)
	v.SetDefault("log_config.colorize", defaults.Logging.Colorize)
	v.SetDefault("log_config.stringify", defaults.Logging.Stringify)

	if err := v.ReadInConfig(); err != nil {
		logger.Debug("Config overlay skipped.", "path", path, "reason", err)
		return defaults, nil
	}

	var merged Settings
	if err := v.Unmarshal(&merged); err != nil {
		logger.Debug("Config overlay not decodable.", "path", path, "reason", err)
		return defaults, nil
	}

	logger.Debug("Config overlay applied.", "path", path, "network", string(network))
	return merged, nil
}

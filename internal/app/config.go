package app

import (
	"context"

	"github.com/vk/chainctl/internal/cli"
	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/netconfig"
)

// GlobalFlagSpec declares every global flag. Single letters; ':' marks a
// value-taking flag.
//
//	-c PATH   config file overlaying the network defaults
//	-d        debug logging
//	-e        estimate fees only
//	-i        integration-test mode (regtest network)
//	-m PATH   extra command-manifest directory
//	-n        dry run, build transactions but never broadcast
//	-t        testnet mode
//	-U        unsafe mode, skip interactive safety checks
//	-x        skip the config file entirely
//	-B ADDR   burn address override
//	-C HASH   consensus hash override
//	-D UNIT   denomination override
//	-F RATE   fee rate override
//	-G BLKS   grace period override
//	-H URL    API endpoint override
//	-I URL    indexer node override
//	-N BLKS   namespace pay period override
//	-P PRICE  price override
//	-T URL    broadcast service override
const GlobalFlagSpec = "c:deim:ntUxB:C:D:F:G:H:I:N:P:T:"

// Config holds everything the App needs to run one CLI invocation.
type Config struct {
	Network     netconfig.Network
	ConfigPath  string
	ManifestDir string

	Debug       bool
	DryRun      bool
	Estimate    bool
	Unsafe      bool
	Integration bool
	Testnet     bool

	// Overrides carries the value flags directed at the executor (burn
	// address, price, consensus hash, ...), keyed by setting name and
	// holding only the flags that were actually supplied.
	Overrides map[string]string

	// Remainder is the command name followed by its argument tokens.
	Remainder []string
}

// executorOverrideFlags maps value flags to the override keys the executor
// understands. The endpoint flags (-H, -I, -T) are not here; they overlay
// the network settings instead.
var executorOverrideFlags = map[byte]string{
	'B': "burn_address",
	'C': "consensus_hash",
	'D': "denomination",
	'F': "fee_rate",
	'G': "grace_period",
	'N': "namespace_pay_period",
	'P': "price",
}

// NewConfig scans args for the global flags and derives the invocation
// configuration. Scanning never fails; unrecognized tokens stay in the
// remainder for the command layer to judge.
func NewConfig(ctx context.Context, args []string) *Config {
	logger := ctxlog.FromContext(ctx)

	opts := cli.ParseOptions(ctx, args, GlobalFlagSpec)

	cfg := &Config{
		Network:     netconfig.Mainnet,
		Debug:       opts.Bool('d'),
		DryRun:      opts.Bool('n'),
		Estimate:    opts.Bool('e'),
		Unsafe:      opts.Bool('U'),
		Integration: opts.Bool('i'),
		Testnet:     opts.Bool('t'),
		Overrides:   make(map[string]string),
		Remainder:   opts.Remainder,
	}

	// Integration-test mode is the stronger claim; it wins over -t.
	if cfg.Testnet {
		cfg.Network = netconfig.Testnet
	}
	if cfg.Integration {
		cfg.Network = netconfig.Regtest
	}

	if v, ok := opts.Value('c'); ok && !opts.Bool('x') {
		cfg.ConfigPath = v
	}
	if v, ok := opts.Value('m'); ok {
		cfg.ManifestDir = v
	}

	for flag, key := range executorOverrideFlags {
		if v, ok := opts.Value(flag); ok {
			cfg.Overrides[key] = v
		}
	}
	for _, flag := range []byte{'H', 'I', 'T'} {
		if v, ok := opts.Value(flag); ok {
			cfg.Overrides[endpointOverrideKey(flag)] = v
		}
	}

	logger.Debug("CLI configuration derived.", "network", string(cfg.Network), "remainder", len(cfg.Remainder))
	return cfg
}

func endpointOverrideKey(flag byte) string {
	switch flag {
	case 'H':
		return "api_url"
	case 'I':
		return "node_url"
	case 'T':
		return "broadcast_service_url"
	}
	panic("app: not an endpoint flag")
}

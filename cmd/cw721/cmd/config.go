package cmd

import (
	"errors"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokt-network/cw721/cmd/flags"
)

const (
	// envPrefix is the viper env prefix. This prefix must be used when setting viper values via environment variables.
	// E.g. CW721_GRPC_ADDR=localhost:9090.
	// See: https://github.com/spf13/viper?tab=readme-ov-file#working-with-environment-variables
	envPrefix = "CW721"

	// configName is the name of the config file searched for (without extension).
	configName = "cw721_config"
)

// configPath is bound to the --config flag.
var configPath string

// Config holds the connection settings shared by all cw721 subcommands.
type Config struct {
	GRPCAddr     string `mapstructure:"grpc_addr"`
	GRPCInsecure bool   `mapstructure:"grpc_insecure"`
	Node         string `mapstructure:"node"`
	Height       int64  `mapstructure:"height"`
	Contract     string `mapstructure:"contract"`
}

// ValidateBasic ensures that a valid contract address is configured.
func (cfg *Config) ValidateBasic() error {
	if err := validateAddress(flags.FlagContract, cfg.Contract); err != nil {
		return err
	}

	if cfg.Height < 0 {
		return flags.ErrFlagInvalidValue.Wrapf("--%s %d: must not be negative", flags.FlagHeight, cfg.Height)
	}

	return nil
}

// ValidateEndpoints ensures that at least one endpoint to query is configured.
func (cfg *Config) ValidateEndpoints() error {
	if cfg.GRPCAddr == "" && cfg.Node == "" {
		return flags.ErrFlagMissingValue.Wrapf("one of --%s or --%s", flags.FlagGRPC, flags.FlagNode)
	}
	return nil
}

// validateAddress ensures that addr, the value of flagName, is a bech32 address.
// Any human readable prefix is accepted.
func validateAddress(flagName, addr string) error {
	if addr == "" {
		return flags.ErrFlagMissingValue.Wrapf("--%s", flagName)
	}
	if _, _, err := bech32.DecodeAndConvert(addr); err != nil {
		return flags.ErrFlagInvalidValue.Wrapf("--%s %q: %s", flagName, addr, err)
	}
	return nil
}

// ParseConfig reads the Config from viper and validates it.
func ParseConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.ValidateBasic(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupViper reads viper config values from the following sources in order of precedence (highest to lowest):
// 1. Explicit viper.Set() calls
// 2. Bound flags
// 3. Environment variables
// 4. Persistent config file(s)
// 5. Defaults
// See: https://github.com/spf13/viper?tab=readme-ov-file#why-viper
func setupViper(_ *cobra.Command) error {
	// Set up the viper config (search paths, extension, etc.).
	if err := setViperConfig(); err != nil {
		return err
	}

	// Bind all viper values to environment variables prefixed with the envPrefix.
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	setViperDefaults()
	return nil
}

// setViperConfig first sets up the viper config search paths, file name, and file extension;
// then it attempts to load it.
func setViperConfig() error {
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")

	// If a config path is provided, use it instead of searching.
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// call multiple times to add many search paths
		viper.AddConfigPath("$HOME/.cw721")
		viper.AddConfigPath(".")
	}

	// Find and read the config file
	err := viper.ReadInConfig()
	switch {
	// It's okay if the config file doesn't exist.
	// Configuration MAY be done via flags or environment variables instead.
	// We will rely on the Config validation later.
	case errors.As(err, &viper.ConfigFileNotFoundError{}):
		return nil
	default:
		return err
	}
}

// setViperDefaults sets default values for the following viper config values:
// - grpc_insecure
// - height
func setViperDefaults() {
	viper.SetDefault(flags.ConfigKeyGRPCInsecure, false)
	viper.SetDefault(flags.ConfigKeyHeight, 0)
}

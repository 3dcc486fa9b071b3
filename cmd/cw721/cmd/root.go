// Package cmd implements the cw721 command line client: read-only queries
// against a cw721 contract and construction of unsigned execute messages.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/cmd/logger"
	"github.com/pokt-network/cw721/cmd/signals"
)

// NewRootCmd returns the cw721 root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cw721",
		Short: "Query and build messages for a cw721 NFT contract",
		Long: `Query and build messages for a cw721 NFT contract deployed on a CosmWasm enabled chain.

Queries are issued over gRPC (--grpc-addr) or, if no gRPC endpoint is configured,
as ABCI queries over CometBFT RPC (--node).

Every connection flag may also be set via a CW721_ prefixed environment variable
(e.g. CW721_GRPC_ADDR) or a cw721_config.yaml file (see --config).`,
		SilenceUsage:       true,
		PersistentPreRunE:  persistentPreRunE,
		PersistentPostRunE: logger.PostRunECleanup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, flags.FlagConfig, "", flags.FlagConfigUsage)
	rootCmd.PersistentFlags().StringVar(&logger.LogLevel, flags.FlagLogLevel, flags.DefaultLogLevel, flags.FlagLogLevelUsage)
	rootCmd.PersistentFlags().StringVar(&logger.LogOutput, flags.FlagLogOutput, flags.DefaultLogOutput, flags.FlagLogOutputUsage)
	rootCmd.PersistentFlags().StringP(flags.FlagOutput, flags.FlagOutputShort, outputFormatJSON, flags.FlagOutputUsage)

	if err := flags.BindFlags(rootCmd,
		flags.FlagDescriptor{FlagName: flags.FlagGRPC, ConfigKey: flags.ConfigKeyGRPCAddr, Description: flags.FlagGRPCUsage},
		flags.FlagDescriptor{FlagName: flags.FlagNode, ConfigKey: flags.ConfigKeyNode, Description: flags.FlagNodeUsage},
		flags.FlagDescriptor{FlagName: flags.FlagHeight, ConfigKey: flags.ConfigKeyHeight, Description: flags.FlagHeightUsage},
		flags.FlagDescriptor{FlagName: flags.FlagContract, ConfigKey: flags.ConfigKeyContract, Description: flags.FlagContractUsage},
	); err != nil {
		panic(err)
	}
	if err := flags.BindBoolFlags(rootCmd,
		flags.FlagDescriptor{FlagName: flags.FlagGRPCInsecure, ConfigKey: flags.ConfigKeyGRPCInsecure, Description: flags.FlagGRPCInsecureUsage},
	); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(QueryCmd())
	rootCmd.AddCommand(TxCmd())
	rootCmd.AddCommand(ProbeCmd())

	return rootCmd
}

// persistentPreRunE loads the configuration, sets up the logger and cancels
// the command's context when the process is interrupted.
func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if err := setupViper(cmd); err != nil {
		return err
	}

	if err := logger.PreRunESetup(cmd, args); err != nil {
		return err
	}

	ctx, cancelCtx := context.WithCancel(cmd.Context())
	cmd.SetContext(ctx)
	signals.GoOnExitSignal(logger.Logger, cancelCtx)

	return nil
}

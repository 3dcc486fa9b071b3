package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/cmd/logger"
	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721"
)

// rawHelper leaves every extension undecoded such that the CLI works against
// any cw721 contract and prints extensions exactly as the contract returns them.
type rawHelper = cw721.Helper[json.RawMessage, json.RawMessage, json.RawMessage, json.RawMessage]

// newRawHelper returns a rawHelper for the contract at contractAddr.
func newRawHelper(contractAddr string) rawHelper {
	return cw721.NewHelper[json.RawMessage, json.RawMessage, json.RawMessage, json.RawMessage](contractAddr)
}

// queryFn issues a single query through helper and returns the response to print.
type queryFn func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error)

// QueryCmd returns the `cw721 query` command and its subcommands.
func QueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Query the state of a cw721 contract",
	}

	queryCmd.AddCommand(
		ownerOfCmd(),
		approvalCmd(),
		approvalsCmd(),
		operatorCmd(),
		allOperatorsCmd(),
		numTokensCmd(),
		collectionMetadataCmd(),
		nftInfoCmd(),
		allNftInfoCmd(),
		tokensCmd(),
		allTokensCmd(),
		contractInfoCmd(),
		minterCmd(),
		creatorCmd(),
		withdrawAddressCmd(),
	)

	return queryCmd
}

func ownerOfCmd() *cobra.Command {
	var includeExpired bool

	cmd := &cobra.Command{
		Use:   "owner-of [token-id]",
		Short: "Show the owner of a token and its approvals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.OwnerOf(ctx, querier, args[0], includeExpired)
			})
		},
	}
	cmd.Flags().BoolVar(&includeExpired, flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)

	return cmd
}

func approvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approval [token-id] [spender]",
		Short: "Show the approval of spender for a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeExpired, err := optionalBoolFlag(cmd, flags.FlagIncludeExpired)
			if err != nil {
				return err
			}

			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.Approval(ctx, querier, args[0], args[1], includeExpired)
			})
		},
	}
	cmd.Flags().Bool(flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)

	return cmd
}

func approvalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals [token-id]",
		Short: "List all approvals for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeExpired, err := optionalBoolFlag(cmd, flags.FlagIncludeExpired)
			if err != nil {
				return err
			}

			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.Approvals(ctx, querier, args[0], includeExpired)
			})
		},
	}
	cmd.Flags().Bool(flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)

	return cmd
}

func operatorCmd() *cobra.Command {
	var includeExpired bool

	cmd := &cobra.Command{
		Use:   "operator [owner] [operator]",
		Short: "Show the approval of operator over all of owner's tokens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.Operator(ctx, querier, args[0], args[1], includeExpired)
			})
		},
	}
	cmd.Flags().BoolVar(&includeExpired, flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)

	return cmd
}

func allOperatorsCmd() *cobra.Command {
	var includeExpired bool

	cmd := &cobra.Command{
		Use:   "all-operators [owner]",
		Short: "List the operators of owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAfter, limit, err := paginationFlags(cmd)
			if err != nil {
				return err
			}

			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.AllOperators(ctx, querier, args[0], includeExpired, startAfter, limit)
			})
		},
	}
	cmd.Flags().BoolVar(&includeExpired, flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)
	addPaginationFlags(cmd)

	return cmd
}

func numTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "num-tokens",
		Short: "Show the total number of tokens issued",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.NumTokens(ctx, querier)
			})
		},
	}
}

func collectionMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collection-metadata",
		Short: "Show the collection metadata, including its extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.CollectionMetadata(ctx, querier)
			})
		},
	}
}

func nftInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nft-info [token-id]",
		Short: "Show the URI and extension of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.NftInfo(ctx, querier, args[0])
			})
		},
	}
}

func allNftInfoCmd() *cobra.Command {
	var includeExpired bool

	cmd := &cobra.Command{
		Use:   "all-nft-info [token-id]",
		Short: "Show the ownership and info of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.AllNftInfo(ctx, querier, args[0], includeExpired)
			})
		},
	}
	cmd.Flags().BoolVar(&includeExpired, flags.FlagIncludeExpired, false, flags.FlagIncludeExpiredUsage)

	return cmd
}

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [owner]",
		Short: "List the token ids owned by owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAfter, limit, err := paginationFlags(cmd)
			if err != nil {
				return err
			}

			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.Tokens(ctx, querier, args[0], startAfter, limit)
			})
		},
	}
	addPaginationFlags(cmd)

	return cmd
}

func allTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all-tokens",
		Short: "List all token ids issued by the contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startAfter, limit, err := paginationFlags(cmd)
			if err != nil {
				return err
			}

			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.AllTokens(ctx, querier, startAfter, limit)
			})
		},
	}
	addPaginationFlags(cmd)

	return cmd
}

func contractInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract-info",
		Short: "Show the collection name and symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.ContractInfo(ctx, querier)
			})
		},
	}
}

func minterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minter",
		Short: "Show the ownership of the minter role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.MinterOwnership(ctx, querier)
			})
		},
	}
}

func creatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creator",
		Short: "Show the ownership of the creator role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.CreatorOwnership(ctx, querier)
			})
		},
	}
}

func withdrawAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-address",
		Short: "Show the address which receives withdrawn funds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, func(ctx context.Context, helper rawHelper, querier client.SmartQueryClient) (any, error) {
				return helper.WithdrawAddress(ctx, querier)
			})
		},
	}
}

// runQuery resolves the configuration, connects to the configured endpoint,
// issues the query and prints its response as JSON.
func runQuery(cmd *cobra.Command, query queryFn) error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}

	querier, closeQuerier, err := newSmartQueryClient(cfg)
	if err != nil {
		return err
	}
	defer closeOrWarn(closeQuerier)

	logger.Logger.Debug().
		Str("contract", cfg.Contract).
		Str("grpc_addr", cfg.GRPCAddr).
		Str("node", cfg.Node).
		Msgf("running %q", cmd.CommandPath())

	res, err := query(cmd.Context(), newRawHelper(cfg.Contract), querier)
	if err != nil {
		return err
	}

	return printOutput(cmd, res)
}

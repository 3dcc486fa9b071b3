package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/cmd/logger"
	"github.com/pokt-network/cw721/pkg/client/query"
	"github.com/pokt-network/cw721/pkg/cw721/types"
)

// rawExecuteMsg is an execute message whose extension payloads are left undecoded.
type rawExecuteMsg = types.ExecuteMsg[json.RawMessage, json.RawMessage]

// TxCmd returns the `cw721 tx` command and its subcommands. Each subcommand
// prints an unsigned MsgExecuteContract; signing and broadcasting it is left
// to the caller's wallet or tx tooling.
func TxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Build unsigned execute messages for a cw721 contract",
	}

	txCmd.PersistentFlags().String(flags.FlagFrom, "", flags.FlagFromUsage)

	txCmd.AddCommand(
		transferNftCmd(),
		sendNftCmd(),
		approveCmd(),
		revokeCmd(),
		approveAllCmd(),
		revokeAllCmd(),
		burnCmd(),
	)

	return txCmd
}

func transferNftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-nft [recipient] [token-id]",
		Short: "Transfer a token to recipient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, rawExecuteMsg{TransferNft: &types.TransferNft{
				Recipient: args[0],
				TokenID:   args[1],
			}})
		},
	}
}

func sendNftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-nft [contract] [token-id] [msg-json]",
		Short: "Send a token to a contract, triggering its receive hook with msg-json",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(args[2])) {
				return flags.ErrFlagInvalidValue.Wrapf("msg-json %q is not valid JSON", args[2])
			}

			return runTx(cmd, rawExecuteMsg{SendNft: &types.SendNft{
				Contract: args[0],
				TokenID:  args[1],
				Msg:      []byte(args[2]),
			}})
		},
	}
}

func approveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve [spender] [token-id]",
		Short: "Allow spender to transfer or send a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expires, err := expirationFlags(cmd)
			if err != nil {
				return err
			}

			return runTx(cmd, rawExecuteMsg{Approve: &types.Approve{
				Spender: args[0],
				TokenID: args[1],
				Expires: expires,
			}})
		},
	}
	addExpirationFlags(cmd)

	return cmd
}

func revokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [spender] [token-id]",
		Short: "Revoke a single token approval",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, rawExecuteMsg{Revoke: &types.Revoke{
				Spender: args[0],
				TokenID: args[1],
			}})
		},
	}
}

func approveAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-all [operator]",
		Short: "Allow operator to transfer or send all of the sender's tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expires, err := expirationFlags(cmd)
			if err != nil {
				return err
			}

			return runTx(cmd, rawExecuteMsg{ApproveAll: &types.ApproveAll{
				Operator: args[0],
				Expires:  expires,
			}})
		},
	}
	addExpirationFlags(cmd)

	return cmd
}

func revokeAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-all [operator]",
		Short: "Revoke an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, rawExecuteMsg{RevokeAll: &types.RevokeAll{
				Operator: args[0],
			}})
		},
	}
}

func burnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burn [token-id]",
		Short: "Destroy a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTx(cmd, rawExecuteMsg{Burn: &types.Burn{
				TokenID: args[0],
			}})
		},
	}
}

// runTx wraps msg in an execute envelope for the configured contract and
// prints it as an unsigned MsgExecuteContract from --from.
func runTx(cmd *cobra.Command, msg rawExecuteMsg) error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}

	sender, err := cmd.Flags().GetString(flags.FlagFrom)
	if err != nil {
		return err
	}
	if err = validateAddress(flags.FlagFrom, sender); err != nil {
		return err
	}

	wasmMsg, err := newRawHelper(cfg.Contract).Call(msg)
	if err != nil {
		return err
	}

	logger.Logger.Debug().
		Str("contract", cfg.Contract).
		Str("sender", sender).
		Msgf("built %q execute message", cmd.Name())

	msgJSON, err := query.MarshalMsgJSON(wasmMsg.ToMsgExecuteContract(sender))
	if err != nil {
		return err
	}

	return printJSONBytes(cmd, msgJSON)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/pkg/cw721/types"
)

const (
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"
)

// printOutput writes v to the command's output in the format selected by
// --output.
func printOutput(cmd *cobra.Command, v any) error {
	jsonBz, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return printJSONBytes(cmd, jsonBz)
}

// printJSONBytes writes the JSON document jsonBz to the command's output in
// the format selected by --output. YAML keys follow the JSON field names.
func printJSONBytes(cmd *cobra.Command, jsonBz []byte) error {
	outputFormat, err := cmd.Flags().GetString(flags.FlagOutput)
	if err != nil {
		return err
	}

	var outBz []byte
	switch outputFormat {
	case outputFormatJSON:
		indented := new(bytes.Buffer)
		if err = json.Indent(indented, jsonBz, "", "  "); err != nil {
			return err
		}
		outBz = indented.Bytes()
	case outputFormatYAML:
		var doc any
		if err = json.Unmarshal(jsonBz, &doc); err != nil {
			return err
		}
		if outBz, err = yaml.Marshal(doc); err != nil {
			return err
		}
		outBz = bytes.TrimSuffix(outBz, []byte("\n"))
	default:
		return flags.ErrFlagInvalidValue.Wrapf("--%s %q: expected %s or %s",
			flags.FlagOutput, outputFormat, outputFormatJSON, outputFormatYAML,
		)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(outBz))
	return err
}

// addPaginationFlags registers --start-after and --limit on cmd.
func addPaginationFlags(cmd *cobra.Command) {
	cmd.Flags().String(flags.FlagStartAfter, "", flags.FlagStartAfterUsage)
	cmd.Flags().Uint32(flags.FlagLimit, 0, flags.FlagLimitUsage)
}

// paginationFlags returns the --start-after and --limit values of cmd; each
// is nil unless the flag was set explicitly.
func paginationFlags(cmd *cobra.Command) (startAfter *string, limit *uint32, err error) {
	if cmd.Flags().Changed(flags.FlagStartAfter) {
		startAfterStr, err := cmd.Flags().GetString(flags.FlagStartAfter)
		if err != nil {
			return nil, nil, err
		}
		startAfter = &startAfterStr
	}

	if cmd.Flags().Changed(flags.FlagLimit) {
		limitVal, err := cmd.Flags().GetUint32(flags.FlagLimit)
		if err != nil {
			return nil, nil, err
		}
		limit = &limitVal
	}

	return startAfter, limit, nil
}

// optionalBoolFlag returns the value of the named bool flag, or nil unless it
// was set explicitly.
func optionalBoolFlag(cmd *cobra.Command, flagName string) (*bool, error) {
	if !cmd.Flags().Changed(flagName) {
		return nil, nil
	}

	flagValue, err := cmd.Flags().GetBool(flagName)
	if err != nil {
		return nil, err
	}
	return &flagValue, nil
}

// expirationFlags returns the expiration described by the --expires-at-height
// and --expires-at-time flags of cmd, or nil if neither was set.
func expirationFlags(cmd *cobra.Command) (*types.Expiration, error) {
	atHeightSet := cmd.Flags().Changed(flags.FlagExpiresAtHeight)
	atTimeSet := cmd.Flags().Changed(flags.FlagExpiresAtTime)

	switch {
	case atHeightSet && atTimeSet:
		return nil, flags.ErrFlagInvalidValue.Wrapf(
			"--%s and --%s are mutually exclusive",
			flags.FlagExpiresAtHeight, flags.FlagExpiresAtTime,
		)
	case atHeightSet:
		height, err := cmd.Flags().GetUint64(flags.FlagExpiresAtHeight)
		if err != nil {
			return nil, err
		}
		expiration := types.ExpiresAtHeight(height)
		return &expiration, nil
	case atTimeSet:
		timeStr, err := cmd.Flags().GetString(flags.FlagExpiresAtTime)
		if err != nil {
			return nil, err
		}
		expiresAt, err := time.Parse(time.RFC3339Nano, timeStr)
		if err != nil {
			return nil, flags.ErrFlagInvalidValue.Wrapf("--%s %q: %s", flags.FlagExpiresAtTime, timeStr, err)
		}
		if expiresAt.UnixNano() < 0 {
			return nil, flags.ErrFlagInvalidValue.Wrapf("--%s %q: before the unix epoch", flags.FlagExpiresAtTime, timeStr)
		}
		expiration := types.ExpiresAtTime(types.NewTimestamp(uint64(expiresAt.UnixNano())))
		return &expiration, nil
	default:
		return nil, nil
	}
}

// addExpirationFlags registers --expires-at-height and --expires-at-time on cmd.
func addExpirationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(flags.FlagExpiresAtHeight, 0, flags.FlagExpiresAtHeightUsage)
	cmd.Flags().String(flags.FlagExpiresAtTime, "", flags.FlagExpiresAtTimeUsage)
}

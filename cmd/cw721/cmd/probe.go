package cmd

import (
	"github.com/spf13/cobra"
)

// probeResponse reports which optional cw721 extensions a contract supports.
type probeResponse struct {
	Metadata   bool `json:"metadata"`
	Enumerable bool `json:"enumerable"`
}

// ProbeCmd returns the `cw721 probe` command.
func ProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Detect whether the contract supports the metadata and enumerable extensions",
		Long: `Detect whether the contract supports the metadata and enumerable extensions.

A contract which rejects the probing query is reported as not supporting the
extension. Connection failures are returned as errors.`,
		Args: cobra.NoArgs,
		RunE: runProbe,
	}
}

func runProbe(cmd *cobra.Command, _ []string) error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}

	querier, closeQuerier, err := newSmartQueryClient(cfg)
	if err != nil {
		return err
	}
	defer closeOrWarn(closeQuerier)

	helper := newRawHelper(cfg.Contract)
	ctx := cmd.Context()

	hasMetadata, err := helper.ProbeMetadata(ctx, querier)
	if err != nil {
		return err
	}

	hasEnumerable, err := helper.ProbeEnumerable(ctx, querier)
	if err != nil {
		return err
	}

	return printOutput(cmd, probeResponse{
		Metadata:   hasMetadata,
		Enumerable: hasEnumerable,
	})
}

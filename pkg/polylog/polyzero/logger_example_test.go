package polyzero_test

import (
	"os"

	"github.com/pokt-network/cw721/pkg/polylog/polyzero"
)

func ExampleNewLogger() {
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.InfoLevel),
		polyzero.WithOutput(os.Stdout),
	)

	logger.Debug().Msg("debug message - should not see me")
	logger.Info().Msgf("queried %d tokens", 3)
	logger.Warn().Str("contract", "cosmos1contract").Send()

	// Output:
	// {"level":"info","message":"queried 3 tokens"}
	// {"level":"warn","contract":"cosmos1contract"}
}

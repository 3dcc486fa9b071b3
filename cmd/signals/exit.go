package signals

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokt-network/cw721/pkg/polylog"
)

const shutDownTimeout = 5 * time.Second

// GoOnExitSignal calls the given callback when the process receives an interrupt or terminate signal.
// It sets up a goroutine that listens for OS signals and invokes the callback.
func GoOnExitSignal(logger polylog.Logger, onInterrupt func()) {
	go func() {
		sigCh := make(chan os.Signal, 1)

		// DEV_NOTE: SIGKILL cannot be trapped, so we don't listen for it.
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		// Block until we receive an interrupt or kill signal (OS-agnostic)
		sig := <-sigCh
		logger.Info().Msgf("Received signal %s, cancelling in-flight queries...", sig)

		done := make(chan struct{})
		go func() {
			defer close(done)
			onInterrupt()
		}()

		timer := time.NewTimer(shutDownTimeout)
		defer timer.Stop()

		// Wait for either completion or another signal or timeout
		select {
		case <-done:
			return
		case sig := <-sigCh:
			logger.Warn().Msgf("Received another signal %s during shutdown, exiting immediately.", sig)
			os.Exit(130) // UNIX convention, use 128 + 2 to indicate a double interrupt (SIGINT)
		case <-timer.C:
			logger.Warn().Msgf("Shutdown timed out after %s, exiting immediately.", shutDownTimeout)
			os.Exit(1)
		}
	}()
}

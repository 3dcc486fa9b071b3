package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pokt-network/cw721/cmd/cw721/cmd"
	"github.com/pokt-network/cw721/cmd/logger"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		_ = logger.Close()
		os.Exit(1)
	}
}

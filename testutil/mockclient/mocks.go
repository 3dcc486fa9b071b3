package mockclient

import (
	// Keeps mockgen's model package in the module graph so that `go generate`
	// works with -mod=readonly.
	_ "go.uber.org/mock/mockgen/model"
)

// This package holds the mockgen-generated implementations of the interfaces
// declared in pkg/client. Regenerate with `go generate ./pkg/client/...`.

package cw721

import (
	"context"
	"encoding/json"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721/types"
	"github.com/pokt-network/cw721/pkg/polylog"
)

// HasMetadata returns true if the contract answers the collection metadata
// query. Any failure, including a transport failure, yields false; use
// ProbeMetadata to tell the two apart.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) HasMetadata(
	ctx context.Context,
	querier client.SmartQueryClient,
) bool {
	_, err := QueryCollectionMetadata[json.RawMessage](ctx, h, querier)
	return err == nil
}

// HasEnumerable returns true if the contract answers the tokens-by-owner
// query. The contract's own address is used as a syntactically valid owner.
// Any failure, including a transport failure, yields false; use
// ProbeEnumerable to tell the two apart.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) HasEnumerable(
	ctx context.Context,
	querier client.SmartQueryClient,
) bool {
	_, err := h.Tokens(ctx, querier, h.contractAddr, nil, types.Ptr[uint32](1))
	return err == nil
}

// ProbeMetadata is HasMetadata, except that transport failures
// (ErrCW721QueryUnavailable) are returned rather than reported as an
// unsupported extension.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) ProbeMetadata(
	ctx context.Context,
	querier client.SmartQueryClient,
) (bool, error) {
	_, err := QueryCollectionMetadata[json.RawMessage](ctx, h, querier)
	return probeResult(ctx, "metadata", err)
}

// ProbeEnumerable is HasEnumerable, except that transport failures
// (ErrCW721QueryUnavailable) are returned rather than reported as an
// unsupported extension.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) ProbeEnumerable(
	ctx context.Context,
	querier client.SmartQueryClient,
) (bool, error) {
	_, err := h.Tokens(ctx, querier, h.contractAddr, nil, types.Ptr[uint32](1))
	return probeResult(ctx, "enumerable", err)
}

func probeResult(ctx context.Context, extension string, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case IsTransientError(err):
		return false, err
	default:
		polylog.Ctx(ctx).Debug().
			Str("extension", extension).
			Err(err).
			Msg("cw721 extension not supported")
		return false, nil
	}
}

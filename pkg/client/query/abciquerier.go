package query

import (
	"context"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	rpcclient "github.com/cometbft/cometbft/rpc/client"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721"
)

// smartContractStatePath is the ABCI query path of the wasm module's
// SmartContractState gRPC method.
const smartContractStatePath = "/cosmwasm.wasm.v1.Query/SmartContractState"

var _ client.SmartQueryClient = (*abciWasmQuerier)(nil)

// abciWasmQuerier issues smart queries as ABCI queries over CometBFT RPC. It
// is useful when only a node's RPC endpoint is reachable.
type abciWasmQuerier struct {
	abciClient client.ABCIQueryClient

	// queryHeight is the height at which queries are evaluated; 0 means latest.
	queryHeight int64
}

// ABCIWasmQuerierOption configures an ABCI-backed SmartQueryClient.
type ABCIWasmQuerierOption func(*abciWasmQuerier)

// WithQueryHeight evaluates every query against the state at height.
func WithQueryHeight(height int64) ABCIWasmQuerierOption {
	return func(aq *abciWasmQuerier) {
		aq.queryHeight = height
	}
}

// NewABCIWasmQuerier returns a new instance of a client.SmartQueryClient by
// injecting the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - client.ABCIQueryClient
//
// Available options:
// - WithQueryHeight
func NewABCIWasmQuerier(
	deps depinject.Config,
	opts ...ABCIWasmQuerierOption,
) (client.SmartQueryClient, error) {
	aq := &abciWasmQuerier{}

	if err := depinject.Inject(
		deps,
		&aq.abciClient,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(aq)
	}

	return aq, nil
}

// QuerySmart issues queryData against the contract at contractAddr. RPC
// failures are wrapped with cw721.ErrCW721QueryUnavailable; a non-zero ABCI
// response code with ErrQueryWasmSmartQuery.
func (aq *abciWasmQuerier) QuerySmart(
	ctx context.Context,
	contractAddr string,
	queryData []byte,
) ([]byte, error) {
	req := &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddr,
		QueryData: queryData,
	}
	reqBz, err := req.Marshal()
	if err != nil {
		return nil, cw721.ErrCW721Serialization.Wrapf("contract: %s [%s]", contractAddr, err)
	}

	opts := rpcclient.ABCIQueryOptions{Height: aq.queryHeight}
	abciRes, err := aq.abciClient.ABCIQueryWithOptions(ctx, smartContractStatePath, reqBz, opts)
	if err != nil {
		return nil, cw721.ErrCW721QueryUnavailable.Wrapf("contract: %s [%s]", contractAddr, err)
	}

	if abciRes.Response.IsErr() {
		return nil, ErrQueryWasmSmartQuery.Wrapf(
			"contract: %s, codespace: %s, code: %d [%s]",
			contractAddr, abciRes.Response.Codespace, abciRes.Response.Code, abciRes.Response.Log,
		)
	}

	res := &wasmtypes.QuerySmartContractStateResponse{}
	if err := res.Unmarshal(abciRes.Response.Value); err != nil {
		return nil, ErrQueryUnableToDeserializeResponse.Wrapf("contract: %s [%s]", contractAddr, err)
	}

	return res.Data, nil
}

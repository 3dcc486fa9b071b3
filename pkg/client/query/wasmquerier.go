package query

import (
	"context"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/gogoproto/grpc"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721"
)

var _ client.SmartQueryClient = (*wasmQuerier)(nil)

// wasmQuerier is a wrapper around the wasmtypes.QueryClient that enables
// smart queries against any contract over gRPC.
type wasmQuerier struct {
	clientConn  grpc.ClientConn
	wasmQuerier wasmtypes.QueryClient
}

// NewWasmQuerier returns a new instance of a client.SmartQueryClient by
// injecting the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewWasmQuerier(deps depinject.Config) (client.SmartQueryClient, error) {
	wq := &wasmQuerier{}

	if err := depinject.Inject(
		deps,
		&wq.clientConn,
	); err != nil {
		return nil, err
	}

	wq.wasmQuerier = wasmtypes.NewQueryClient(wq.clientConn)

	return wq, nil
}

// QuerySmart issues queryData against the contract at contractAddr. Transport
// failures are wrapped with cw721.ErrCW721QueryUnavailable; any other failure
// with ErrQueryWasmSmartQuery.
func (wq *wasmQuerier) QuerySmart(
	ctx context.Context,
	contractAddr string,
	queryData []byte,
) ([]byte, error) {
	req := &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddr,
		QueryData: queryData,
	}

	res, err := wq.wasmQuerier.SmartContractState(ctx, req)
	if err != nil {
		if cw721.IsTransientError(err) {
			return nil, cw721.ErrCW721QueryUnavailable.Wrapf("contract: %s [%s]", contractAddr, err)
		}
		return nil, ErrQueryWasmSmartQuery.Wrapf("contract: %s [%s]", contractAddr, err)
	}

	return res.Data, nil
}

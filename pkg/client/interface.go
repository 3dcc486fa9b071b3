//go:generate mockgen -destination=../../testutil/mockclient/smart_query_client_mock.go -package=mockclient . SmartQueryClient
//go:generate mockgen -destination=../../testutil/mockclient/abci_query_client_mock.go -package=mockclient . ABCIQueryClient

package client

import (
	"context"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
)

// SmartQueryClient issues read-only smart queries against CosmWasm contracts.
// It is the only capability the cw721 helper needs from its host environment
// to read contract state.
type SmartQueryClient interface {
	// QuerySmart sends queryData (a JSON-encoded query message) to the query
	// entry point of the contract at contractAddr and returns the contract's
	// raw JSON response.
	QuerySmart(
		ctx context.Context,
		contractAddr string,
		queryData []byte,
	) ([]byte, error)
}

// ABCIQueryClient is the subset of the CometBFT RPC client used to issue ABCI
// queries. It is satisfied by the cometbft rpc/client/http client.
type ABCIQueryClient interface {
	ABCIQueryWithOptions(
		ctx context.Context,
		path string,
		data cmtbytes.HexBytes,
		opts rpcclient.ABCIQueryOptions,
	) (*coretypes.ResultABCIQuery, error)
}

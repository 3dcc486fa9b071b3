package query_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/client/query"
	"github.com/pokt-network/cw721/pkg/cw721"
	"github.com/pokt-network/cw721/testutil/mockclient"
)

func TestABCIWasmQuerier_QuerySmart(t *testing.T) {
	const queryHeight = int64(100)
	queryData := []byte(`{"num_tokens":{}}`)

	validResBz, err := (&wasmtypes.QuerySmartContractStateResponse{Data: []byte(`{"count":7}`)}).Marshal()
	require.NoError(t, err)

	tests := []struct {
		desc        string
		abciRes     *coretypes.ResultABCIQuery
		abciErr     error
		expectedRes []byte
		expectedErr error
	}{
		{
			desc:        "success",
			abciRes:     &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: validResBz}},
			expectedRes: []byte(`{"count":7}`),
		},
		{
			desc: "contract rejects query",
			abciRes: &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{
				Code:      9,
				Codespace: "wasm",
				Log:       "query wasm contract failed",
			}},
			expectedErr: query.ErrQueryWasmSmartQuery,
		},
		{
			desc:        "rpc failure",
			abciErr:     errors.New("post failed: connection refused"),
			expectedErr: cw721.ErrCW721QueryUnavailable,
		},
		{
			desc:        "malformed response",
			abciRes:     &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: []byte{0xff, 0xff}}},
			expectedErr: query.ErrQueryUnableToDeserializeResponse,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			abciClientMock := mockclient.NewMockABCIQueryClient(ctrl)
			abciClientMock.EXPECT().
				ABCIQueryWithOptions(
					gomock.Any(),
					"/cosmwasm.wasm.v1.Query/SmartContractState",
					gomock.Any(),
					rpcclient.ABCIQueryOptions{Height: queryHeight},
				).
				DoAndReturn(func(
					_ context.Context,
					_ string,
					data cmtbytes.HexBytes,
					_ rpcclient.ABCIQueryOptions,
				) (*coretypes.ResultABCIQuery, error) {
					req := &wasmtypes.QuerySmartContractStateRequest{}
					require.NoError(t, req.Unmarshal(data))
					require.Equal(t, testContractAddr, req.Address)
					require.JSONEq(t, string(queryData), string(req.QueryData))

					return test.abciRes, test.abciErr
				}).
				Times(1)

			deps := depinject.Supply(client.ABCIQueryClient(abciClientMock))
			querier, err := query.NewABCIWasmQuerier(deps, query.WithQueryHeight(queryHeight))
			require.NoError(t, err)

			res, err := querier.QuerySmart(context.Background(), testContractAddr, queryData)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				require.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.JSONEq(t, string(test.expectedRes), string(res))
			}
		})
	}
}

package query

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cosmos/gogoproto/grpc"
	googlegrpc "google.golang.org/grpc"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721/types"
)

const unknownQueryVariant = "unknown"

var _ client.SmartQueryClient = (*meteredSmartQueryClient)(nil)

// meteredSmartQueryClient decorates a client.SmartQueryClient, recording the
// count, outcome and duration of every smart query.
type meteredSmartQueryClient struct {
	client.SmartQueryClient
}

// NewMeteredSmartQueryClient wraps querier such that every query is recorded
// in SmartQueriesTotal and SmartQueryDurationSeconds.
func NewMeteredSmartQueryClient(querier client.SmartQueryClient) client.SmartQueryClient {
	return &meteredSmartQueryClient{SmartQueryClient: querier}
}

// QuerySmart delegates to the wrapped client and records the result.
func (m *meteredSmartQueryClient) QuerySmart(
	ctx context.Context,
	contractAddr string,
	queryData []byte,
) ([]byte, error) {
	startTime := time.Now()
	res, err := m.SmartQueryClient.QuerySmart(ctx, contractAddr, queryData)
	CaptureSmartQuery(queryVariantOf(queryData), startTime, err)

	return res, err
}

// queryVariantOf returns the name of the externally tagged variant encoded in
// queryData; i.e. its single top-level key. Keys which are not cw721 query
// variants are reported as unknownQueryVariant to bound label cardinality.
func queryVariantOf(queryData []byte) string {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(queryData, &variants); err != nil || len(variants) != 1 {
		return unknownQueryVariant
	}

	for variant := range variants {
		if types.IsQueryVariant(variant) {
			return variant
		}
	}
	return unknownQueryVariant
}

// grpcClientWithDebugMetrics is a wrapper around grpc.ClientConn that captures
// the duration of gRPC calls.
type grpcClientWithDebugMetrics struct {
	grpc.ClientConn
}

// NewGRPCClientWithDebugMetrics creates a new grpcClientWithDebugMetrics that
// wraps the provided grpc.ClientConn.
func NewGRPCClientWithDebugMetrics(clientConn grpc.ClientConn) grpc.ClientConn {
	return &grpcClientWithDebugMetrics{
		ClientConn: clientConn,
	}
}

// Invoke wraps the ClientConn's Invoke method to capture the duration of the
// call, labeled by the gRPC method name.
func (m *grpcClientWithDebugMetrics) Invoke(
	ctx context.Context,
	method string,
	args, reply any,
	opts ...googlegrpc.CallOption,
) error {
	defer CaptureGRPCCallDuration(method, time.Now())

	return m.ClientConn.Invoke(ctx, method, args, reply, opts...)
}

package cmd

import (
	"crypto/tls"

	"cosmossdk.io/depinject"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pokt-network/cw721/cmd/logger"
	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/client/query"
)

// cometWebsocketPath is the CometBFT RPC websocket endpoint; it is required by
// the HTTP client constructor but never used for ABCI queries.
const cometWebsocketPath = "/websocket"

// newSmartQueryClient builds the SmartQueryClient described by cfg. The gRPC
// endpoint is preferred over the CometBFT RPC endpoint when both are set.
// The returned close function releases the underlying connection.
func newSmartQueryClient(cfg *Config) (querier client.SmartQueryClient, closeFn func() error, err error) {
	if err = cfg.ValidateEndpoints(); err != nil {
		return nil, nil, err
	}

	if cfg.GRPCAddr != "" {
		grpcConn, err := connectGRPC(cfg.GRPCAddr, cfg.GRPCInsecure)
		if err != nil {
			return nil, nil, err
		}

		deps := depinject.Supply(query.NewGRPCClientWithDebugMetrics(grpcConn))
		querier, err = query.NewWasmQuerier(deps)
		if err != nil {
			_ = grpcConn.Close()
			return nil, nil, err
		}

		return query.NewMeteredSmartQueryClient(querier), grpcConn.Close, nil
	}

	cometClient, err := rpchttp.New(cfg.Node, cometWebsocketPath)
	if err != nil {
		return nil, nil, err
	}

	deps := depinject.Supply(client.ABCIQueryClient(cometClient))
	querier, err = query.NewABCIWasmQuerier(deps, query.WithQueryHeight(cfg.Height))
	if err != nil {
		return nil, nil, err
	}

	return query.NewMeteredSmartQueryClient(querier), func() error { return nil }, nil
}

// connectGRPC establishes a gRPC client connection to hostPort, using TLS
// unless isInsecure is true. Messages are encoded with the cosmos-sdk codec.
func connectGRPC(hostPort string, isInsecure bool) (*grpc.ClientConn, error) {
	codecOpt := grpc.WithDefaultCallOptions(grpc.ForceCodec(query.GRPCCodec()))

	if isInsecure {
		return grpc.NewClient(
			hostPort,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			codecOpt,
		)
	}

	return grpc.NewClient(
		hostPort,
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})),
		codecOpt,
	)
}

// closeOrWarn calls closeFn, logging rather than returning any error.
func closeOrWarn(closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Logger.Warn().Err(err).Msg("unable to close query client connection")
	}
}

package testqueryclients

import (
	"context"
	"net"
	"sync"
	"testing"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/pokt-network/cw721/pkg/client/query"
)

const bufconnBufferSize = 1024 * 1024

// callCounter is a simple struct that keeps track of the number of times a method is called
type callCounter struct {
	mu        sync.Mutex
	callCount int
}

func (c *callCounter) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.callCount
}

func (c *callCounter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.callCount++
}

// SmartQueryHandler computes the response to a smart query.
type SmartQueryHandler func(contractAddr string, queryData []byte) ([]byte, error)

// MockWasmQueryServer is a mock implementation of the wasmtypes.QueryServer
// interface which answers smart queries with its Handler and keeps track of
// the number of times it is called.
type MockWasmQueryServer struct {
	wasmtypes.UnimplementedQueryServer
	SmartContractStateCallCounter callCounter

	Handler SmartQueryHandler
}

func (m *MockWasmQueryServer) SmartContractState(
	_ context.Context,
	req *wasmtypes.QuerySmartContractStateRequest,
) (*wasmtypes.QuerySmartContractStateResponse, error) {
	m.SmartContractStateCallCounter.Increment()

	data, err := m.Handler(req.Address, req.QueryData)
	if err != nil {
		return nil, err
	}

	return &wasmtypes.QuerySmartContractStateResponse{Data: data}, nil
}

// NewWasmQueryServerClientConn starts an in-memory gRPC server serving
// wasmQueryServer and returns a client connection to it. Both are closed when
// the test completes.
func NewWasmQueryServerClientConn(
	t *testing.T,
	wasmQueryServer wasmtypes.QueryServer,
) *grpc.ClientConn {
	t.Helper()

	listener := bufconn.Listen(bufconnBufferSize)
	server := serveWasmQueryServer(listener, wasmQueryServer)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(query.GRPCCodec())),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return conn
}

// StartWasmQueryServer starts a gRPC server serving wasmQueryServer on a
// random local TCP port and returns its address. The server is stopped when
// the test completes.
func StartWasmQueryServer(t *testing.T, wasmQueryServer wasmtypes.QueryServer) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := serveWasmQueryServer(listener, wasmQueryServer)
	t.Cleanup(server.Stop)

	return listener.Addr().String()
}

// serveWasmQueryServer serves wasmQueryServer on listener in a new goroutine.
func serveWasmQueryServer(listener net.Listener, wasmQueryServer wasmtypes.QueryServer) *grpc.Server {
	server := grpc.NewServer(grpc.ForceServerCodec(query.GRPCCodec()))
	wasmtypes.RegisterQueryServer(server, wasmQueryServer)

	go func() {
		// Serve returns once the server is stopped during cleanup.
		_ = server.Serve(listener)
	}()

	return server
}

package query

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc/encoding"
)

// queryCodec is the codec used both on the wire for gRPC queries and to render
// wasm messages as JSON. The wasm module's interfaces are registered so that
// its messages resolve by type URL.
var queryCodec *codec.ProtoCodec

func init() {
	reg := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(reg)
	wasmtypes.RegisterInterfaces(reg)
	queryCodec = codec.NewProtoCodec(reg)
}

// GRPCCodec returns the gRPC codec which MUST be used by connections passed to
// NewWasmQuerier; e.g. via grpc.WithDefaultCallOptions(grpc.ForceCodec(...)).
func GRPCCodec() encoding.Codec {
	return queryCodec.GRPCCodec()
}

// MarshalMsgJSON renders msg as canonical proto JSON.
func MarshalMsgJSON(msg proto.Message) ([]byte, error) {
	return queryCodec.MarshalJSON(msg)
}

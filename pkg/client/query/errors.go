package query

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "query"

	// ErrQueryWasmSmartQuery is returned when the node answered a smart query
	// with an error; e.g. the contract rejected the query or does not exist.
	ErrQueryWasmSmartQuery = sdkerrors.Register(codespace, 1100, "wasm smart query rejected")
	// ErrQueryUnableToDeserializeResponse is returned when the node's response
	// envelope cannot be decoded.
	ErrQueryUnableToDeserializeResponse = sdkerrors.Register(codespace, 1101, "unable to deserialize wasm query response")
)

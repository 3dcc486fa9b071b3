package cw721

import (
	"context"
	"errors"

	sdkerrors "cosmossdk.io/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	codespace = "cw721"

	// ErrCW721Serialization is returned when a request has no wire
	// representation (e.g. a sum type without exactly one variant set).
	ErrCW721Serialization = sdkerrors.Register(codespace, 1100, "unable to serialize cw721 message")
	// ErrCW721Query is returned when the remote smart query fails; e.g. the
	// contract does not exist or rejected the query.
	ErrCW721Query = sdkerrors.Register(codespace, 1101, "cw721 smart query failed")
	// ErrCW721QueryUnavailable is the transport-level kind of query failure;
	// e.g. the node is unreachable or the call timed out.
	ErrCW721QueryUnavailable = sdkerrors.Register(codespace, 1102, "cw721 smart query transport unavailable")
	// ErrCW721Deserialization is returned when the contract's response does not
	// decode into the expected response type.
	ErrCW721Deserialization = sdkerrors.Register(codespace, 1103, "unable to deserialize cw721 response")
)

// transientStatusCodes are the gRPC status codes which indicate a transport
// failure rather than a contract-side rejection.
var transientStatusCodes = map[codes.Code]struct{}{
	codes.Unavailable:       {},
	codes.DeadlineExceeded:  {},
	codes.Canceled:          {},
	codes.ResourceExhausted: {},
}

// IsQueryError returns true if err is any kind of remote query failure.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrCW721Query) || errors.Is(err, ErrCW721QueryUnavailable)
}

// IsTransientError returns true if err indicates that the query never reached,
// or never returned from, the contract.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrCW721QueryUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if grpcStatus, ok := status.FromError(err); ok {
		_, isTransient := transientStatusCodes[grpcStatus.Code()]
		return isTransient
	}

	return false
}

// wrapQueryError classifies an error returned by a SmartQueryClient into one of
// the query error kinds, preserving the original error chain.
func wrapQueryError(err error, contractAddr, variant string) error {
	switch {
	case IsQueryError(err):
		return sdkerrors.Wrapf(err, "contract: %s, query: %s", contractAddr, variant)
	case IsTransientError(err):
		return ErrCW721QueryUnavailable.Wrapf("contract: %s, query: %s: %s", contractAddr, variant, err)
	default:
		return ErrCW721Query.Wrapf("contract: %s, query: %s: %s", contractAddr, variant, err)
	}
}

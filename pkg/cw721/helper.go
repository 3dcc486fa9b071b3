package cw721

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721/types"
	"github.com/pokt-network/cw721/pkg/polylog"
)

// ContractAddresser is implemented by anything which identifies a contract
// by its address; notably Helper.
type ContractAddresser interface {
	Address() string
}

var _ ContractAddresser = Helper[types.Empty, types.Empty, types.Empty, types.Empty]{}

// Helper is a stateless, typed client for a single cw721 contract.
//
// TNftExt and TCollExt are the NFT and collection extension types returned by
// the contract's metadata queries; TNftExtMsg and TCollExtMsg are the
// corresponding types accepted by its execute messages. All four MUST be
// JSON-serializable.
//
// A Helper is immutable after construction and safe for concurrent use.
type Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg any] struct {
	contractAddr string
}

// NewHelper returns a Helper for the contract at contractAddr. The address is
// stored verbatim; its format and existence are not checked.
func NewHelper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg any](
	contractAddr string,
) Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg] {
	return Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]{
		contractAddr: contractAddr,
	}
}

// Address returns the contract address the helper was constructed with.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Address() string {
	return h.contractAddr
}

// Call serializes msg and wraps it in an execute envelope targeting the
// contract, with no funds attached. It sends nothing; submitting the envelope
// (e.g. via WasmExecuteMsg#ToMsgExecuteContract) is the caller's concern.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Call(
	msg types.ExecuteMsg[TNftExtMsg, TCollExtMsg],
) (*types.WasmExecuteMsg, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, ErrCW721Serialization.Wrapf("contract: %s: %s", h.contractAddr, err)
	}

	msgBz, err := json.Marshal(msg)
	if err != nil {
		return nil, ErrCW721Serialization.Wrapf("contract: %s: %s", h.contractAddr, err)
	}

	return &types.WasmExecuteMsg{
		ContractAddr: h.contractAddr,
		Msg:          msgBz,
		Funds:        cosmostypes.Coins{},
	}, nil
}

// Query serializes req, issues it as a smart query against the contract
// identified by contract, and decodes the response into T.
//
// It returns:
//   - ErrCW721Serialization if req cannot be encoded
//   - ErrCW721Query or ErrCW721QueryUnavailable if the querier fails
//   - ErrCW721Deserialization if the response does not decode into T
func Query[T any](
	ctx context.Context,
	contract ContractAddresser,
	querier client.SmartQueryClient,
	req types.QueryMsg,
) (res T, err error) {
	contractAddr := contract.Address()
	variant := req.Variant()

	if err = req.ValidateBasic(); err != nil {
		return res, ErrCW721Serialization.Wrapf("contract: %s: %s", contractAddr, err)
	}

	queryData, err := json.Marshal(req)
	if err != nil {
		return res, ErrCW721Serialization.Wrapf("contract: %s, query: %s: %s", contractAddr, variant, err)
	}

	logger := polylog.Ctx(ctx).With(
		"contract", contractAddr,
		"query", variant,
	)
	logger.Debug().Msg("sending cw721 smart query")

	resBz, err := querier.QuerySmart(ctx, contractAddr, queryData)
	if err != nil {
		logger.Debug().Err(err).Msg("cw721 smart query failed")
		return res, wrapQueryError(err, contractAddr, variant)
	}

	if err = decodeResponse(resBz, &res); err != nil {
		return res, ErrCW721Deserialization.Wrapf(
			"contract: %s, query: %s, response: %q: %s",
			contractAddr, variant, resBz, err,
		)
	}

	return res, nil
}

// decodeResponse decodes resBz into res, rejecting fields unknown to T,
// trailing data, and a top-level null unless T is itself nullable.
func decodeResponse[T any](resBz []byte, res *T) error {
	if bytes.Equal(bytes.TrimSpace(resBz), []byte("null")) && !isNullable[T]() {
		return fmt.Errorf("unexpected null response")
	}

	decoder := json.NewDecoder(bytes.NewReader(resBz))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(res); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected data after response at offset %d", decoder.InputOffset())
	}

	return nil
}

// isNullable returns true if JSON null is a valid encoding of T.
func isNullable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

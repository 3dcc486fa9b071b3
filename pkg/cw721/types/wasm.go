package types

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// WasmExecuteMsg is the outbound call envelope for a contract execution: the
// target contract, the JSON-encoded execute message, and the funds to attach.
type WasmExecuteMsg struct {
	ContractAddr string            `json:"contract_addr"`
	Msg          []byte            `json:"msg"`
	Funds        cosmostypes.Coins `json:"funds"`
}

// ToMsgExecuteContract converts the envelope into the wasm module's tx message,
// signed by sender. The caller remains responsible for building, signing and
// broadcasting the transaction.
func (m *WasmExecuteMsg) ToMsgExecuteContract(sender string) *wasmtypes.MsgExecuteContract {
	return &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: m.ContractAddr,
		Msg:      wasmtypes.RawContractMessage(m.Msg),
		Funds:    m.Funds,
	}
}

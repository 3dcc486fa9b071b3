// Package cw721 provides a typed, stateless helper for interacting with a cw721
// (NFT ownership registry) contract deployed on a CosmWasm-enabled chain.
//
// The Helper wraps a contract address. It builds execute envelopes for the
// caller's own transaction pipeline (see Helper.Call) and dispatches typed smart
// queries through a caller-supplied client.SmartQueryClient (see Query). It
// holds no state beyond the address and performs no validation of business
// rules; the remote contract owns those.
//
// The four type parameters of Helper fix the contract's NFT and collection
// extension types (and their corresponding message types) at compile time.
// They carry no runtime value.
package cw721

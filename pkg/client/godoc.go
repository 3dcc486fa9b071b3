// Package client defines the transport interfaces through which contract
// helpers reach a CosmWasm enabled chain.
//
// A SmartQueryClient only knows how to
// deliver raw query bytes to a contract and return the raw response. The
// implementations in the query subpackage leverage external libraries like
// wasmd, cosmos-sdk and cometbft, keeping those dependencies out of the
// packages which encode and decode contract messages.
package client

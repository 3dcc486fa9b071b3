// Package query provides client.SmartQueryClient implementations which issue
// CosmWasm smart queries against a chain node, over either gRPC or CometBFT
// RPC (ABCI query), plus a metrics-recording decorator.
package query

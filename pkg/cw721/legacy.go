package cw721

import "github.com/pokt-network/cw721/pkg/cw721/types"

// Contract is a Helper instantiated with the default, optional extension types.
//
// Deprecated: use Helper with explicit extension types instead.
type Contract = Helper[
	types.DefaultOptionalNftExtension,
	types.DefaultOptionalNftExtensionMsg,
	types.DefaultOptionalCollectionExtension,
	types.DefaultOptionalCollectionExtensionMsg,
]

// NewContract returns a Contract for contractAddr.
//
// Deprecated: use NewHelper with explicit extension types instead.
func NewContract(contractAddr string) Contract {
	return NewHelper[
		types.DefaultOptionalNftExtension,
		types.DefaultOptionalNftExtensionMsg,
		types.DefaultOptionalCollectionExtension,
		types.DefaultOptionalCollectionExtensionMsg,
	](contractAddr)
}

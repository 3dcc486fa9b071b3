package cw721

import (
	"context"

	"github.com/pokt-network/cw721/pkg/client"
	"github.com/pokt-network/cw721/pkg/cw721/types"
)

// OwnerOf returns the owner of tokenID along with its approvals.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) OwnerOf(
	ctx context.Context,
	querier client.SmartQueryClient,
	tokenID string,
	includeExpired bool,
) (*types.OwnerOfResponse, error) {
	req := types.QueryMsg{OwnerOf: &types.OwnerOfQuery{
		TokenID:        tokenID,
		IncludeExpired: &includeExpired,
	}}
	return queryPtr[types.OwnerOfResponse](ctx, h, querier, req)
}

// Approval returns the approval granted to spender for tokenID.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Approval(
	ctx context.Context,
	querier client.SmartQueryClient,
	tokenID, spender string,
	includeExpired *bool,
) (*types.ApprovalResponse, error) {
	req := types.QueryMsg{Approval: &types.ApprovalQuery{
		TokenID:        tokenID,
		Spender:        spender,
		IncludeExpired: includeExpired,
	}}
	return queryPtr[types.ApprovalResponse](ctx, h, querier, req)
}

// Approvals returns every approval granted for tokenID.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Approvals(
	ctx context.Context,
	querier client.SmartQueryClient,
	tokenID string,
	includeExpired *bool,
) (*types.ApprovalsResponse, error) {
	req := types.QueryMsg{Approvals: &types.ApprovalsQuery{
		TokenID:        tokenID,
		IncludeExpired: includeExpired,
	}}
	return queryPtr[types.ApprovalsResponse](ctx, h, querier, req)
}

// Operator returns the approval granted by owner to operator over all of
// owner's tokens.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Operator(
	ctx context.Context,
	querier client.SmartQueryClient,
	owner, operator string,
	includeExpired bool,
) (*types.Approval, error) {
	req := types.QueryMsg{Operator: &types.OperatorQuery{
		Owner:          owner,
		Operator:       operator,
		IncludeExpired: &includeExpired,
	}}
	res, err := Query[types.OperatorResponse](ctx, h, querier, req)
	if err != nil {
		return nil, err
	}
	return &res.Approval, nil
}

// AllOperators returns one page of the operators approved by owner.
// startAfter and limit are forwarded to the contract unchanged.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) AllOperators(
	ctx context.Context,
	querier client.SmartQueryClient,
	owner string,
	includeExpired bool,
	startAfter *string,
	limit *uint32,
) ([]types.Approval, error) {
	req := types.QueryMsg{AllOperators: &types.AllOperatorsQuery{
		Owner:          owner,
		IncludeExpired: &includeExpired,
		StartAfter:     startAfter,
		Limit:          limit,
	}}
	res, err := Query[types.OperatorsResponse](ctx, h, querier, req)
	if err != nil {
		return nil, err
	}
	return res.Operators, nil
}

// NumTokens returns the number of tokens issued by the contract.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) NumTokens(
	ctx context.Context,
	querier client.SmartQueryClient,
) (uint64, error) {
	req := types.QueryMsg{NumTokens: &types.NumTokensQuery{}}
	res, err := Query[types.NumTokensResponse](ctx, h, querier, req)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// ContractInfo returns the collection's name and symbol.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) ContractInfo(
	ctx context.Context,
	querier client.SmartQueryClient,
) (*types.CollectionInfo, error) {
	req := types.QueryMsg{ContractInfo: &types.ContractInfoQuery{}}
	return queryPtr[types.CollectionInfo](ctx, h, querier, req)
}

// CollectionMetadata returns the collection metadata, decoding its extension
// as TCollExt. Use QueryCollectionMetadata to decode into another type.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) CollectionMetadata(
	ctx context.Context,
	querier client.SmartQueryClient,
) (*types.CollectionMetadata[TCollExt], error) {
	return QueryCollectionMetadata[TCollExt](ctx, h, querier)
}

// NftInfo returns the URI and extension of tokenID, decoding the extension as
// TNftExt. Use QueryNftInfo to decode into another type.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) NftInfo(
	ctx context.Context,
	querier client.SmartQueryClient,
	tokenID string,
) (*types.NftInfoResponse[TNftExt], error) {
	return QueryNftInfo[TNftExt](ctx, h, querier, tokenID)
}

// AllNftInfo returns the ownership and info of tokenID, decoding the extension
// as TNftExt. Use QueryAllNftInfo to decode into another type.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) AllNftInfo(
	ctx context.Context,
	querier client.SmartQueryClient,
	tokenID string,
	includeExpired bool,
) (*types.AllNftInfoResponse[TNftExt], error) {
	return QueryAllNftInfo[TNftExt](ctx, h, querier, tokenID, includeExpired)
}

// Tokens returns one page of the token ids owned by owner.
// startAfter and limit are forwarded to the contract unchanged.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) Tokens(
	ctx context.Context,
	querier client.SmartQueryClient,
	owner string,
	startAfter *string,
	limit *uint32,
) (*types.TokensResponse, error) {
	req := types.QueryMsg{Tokens: &types.TokensQuery{
		Owner:      owner,
		StartAfter: startAfter,
		Limit:      limit,
	}}
	return queryPtr[types.TokensResponse](ctx, h, querier, req)
}

// AllTokens returns one page of all token ids issued by the contract.
// startAfter and limit are forwarded to the contract unchanged.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) AllTokens(
	ctx context.Context,
	querier client.SmartQueryClient,
	startAfter *string,
	limit *uint32,
) (*types.TokensResponse, error) {
	req := types.QueryMsg{AllTokens: &types.AllTokensQuery{
		StartAfter: startAfter,
		Limit:      limit,
	}}
	return queryPtr[types.TokensResponse](ctx, h, querier, req)
}

// MinterOwnership returns the ownership of the minter role.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) MinterOwnership(
	ctx context.Context,
	querier client.SmartQueryClient,
) (*types.Ownership, error) {
	req := types.QueryMsg{GetMinterOwnership: &types.GetMinterOwnershipQuery{}}
	return queryPtr[types.Ownership](ctx, h, querier, req)
}

// CreatorOwnership returns the ownership of the creator role.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) CreatorOwnership(
	ctx context.Context,
	querier client.SmartQueryClient,
) (*types.Ownership, error) {
	req := types.QueryMsg{GetCreatorOwnership: &types.GetCreatorOwnershipQuery{}}
	return queryPtr[types.Ownership](ctx, h, querier, req)
}

// WithdrawAddress returns the configured withdraw address, or nil if unset.
func (h Helper[TNftExt, TNftExtMsg, TCollExt, TCollExtMsg]) WithdrawAddress(
	ctx context.Context,
	querier client.SmartQueryClient,
) (*string, error) {
	req := types.QueryMsg{GetWithdrawAddress: &types.GetWithdrawAddressQuery{}}
	return Query[*string](ctx, h, querier, req)
}

// QueryCollectionMetadata returns the collection metadata of contract,
// decoding its extension as U.
func QueryCollectionMetadata[U any](
	ctx context.Context,
	contract ContractAddresser,
	querier client.SmartQueryClient,
) (*types.CollectionMetadata[U], error) {
	req := types.QueryMsg{GetCollectionMetadata: &types.GetCollectionMetadataQuery{}}
	return queryPtr[types.CollectionMetadata[U]](ctx, contract, querier, req)
}

// QueryNftInfo returns the URI and extension of tokenID, decoding the
// extension as U.
func QueryNftInfo[U any](
	ctx context.Context,
	contract ContractAddresser,
	querier client.SmartQueryClient,
	tokenID string,
) (*types.NftInfoResponse[U], error) {
	req := types.QueryMsg{NftInfo: &types.NftInfoQuery{TokenID: tokenID}}
	return queryPtr[types.NftInfoResponse[U]](ctx, contract, querier, req)
}

// QueryAllNftInfo returns the ownership and info of tokenID, decoding the
// extension as U.
func QueryAllNftInfo[U any](
	ctx context.Context,
	contract ContractAddresser,
	querier client.SmartQueryClient,
	tokenID string,
	includeExpired bool,
) (*types.AllNftInfoResponse[U], error) {
	req := types.QueryMsg{AllNftInfo: &types.AllNftInfoQuery{
		TokenID:        tokenID,
		IncludeExpired: &includeExpired,
	}}
	return queryPtr[types.AllNftInfoResponse[U]](ctx, contract, querier, req)
}

// queryPtr is Query for response records which are returned by reference.
func queryPtr[T any](
	ctx context.Context,
	contract ContractAddresser,
	querier client.SmartQueryClient,
	req types.QueryMsg,
) (*T, error) {
	res, err := Query[T](ctx, contract, querier, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

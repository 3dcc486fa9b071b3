package cw721_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/cw721/pkg/cw721"
	"github.com/pokt-network/cw721/pkg/cw721/types"
)

func TestHelper_OwnerOf(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"owner_of":{"token_id":"1","include_expired":true}}`,
		`{"owner":"cosmos1owner","approvals":[]}`,
	)

	res, err := helper.OwnerOf(context.Background(), querier, "1", true)
	require.NoError(t, err)
	require.Equal(t, "cosmos1owner", res.Owner)
	require.Empty(t, res.Approvals)
}

func TestHelper_Approval(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"approval":{"token_id":"1","spender":"cosmos1spender","include_expired":null}}`,
		`{"approval":{"spender":"cosmos1spender","expires":{"never":{}}}}`,
	)

	res, err := helper.Approval(context.Background(), querier, "1", "cosmos1spender", nil)
	require.NoError(t, err)
	require.Equal(t, types.Approval{Spender: "cosmos1spender", Expires: types.ExpiresNever()}, res.Approval)
}

func TestHelper_Approvals(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"approvals":{"token_id":"1","include_expired":false}}`,
		`{"approvals":[{"spender":"cosmos1spender","expires":{"at_height":10}}]}`,
	)

	res, err := helper.Approvals(context.Background(), querier, "1", types.Ptr(false))
	require.NoError(t, err)
	require.Equal(t, []types.Approval{{Spender: "cosmos1spender", Expires: types.ExpiresAtHeight(10)}}, res.Approvals)
}

func TestHelper_Operator(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"operator":{"owner":"cosmos1owner","operator":"cosmos1operator","include_expired":false}}`,
		`{"approval":{"spender":"cosmos1operator","expires":{"never":{}}}}`,
	)

	approval, err := helper.Operator(context.Background(), querier, "cosmos1owner", "cosmos1operator", false)
	require.NoError(t, err)
	require.Equal(t, "cosmos1operator", approval.Spender)
}

func TestHelper_AllOperators(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"all_operators":{"owner":"cosmos1owner","include_expired":true,"start_after":"42","limit":10}}`,
		`{"operators":[{"spender":"cosmos1operator","expires":{"never":{}}}]}`,
	)

	operators, err := helper.AllOperators(
		context.Background(), querier,
		"cosmos1owner", true,
		types.Ptr("42"), types.Ptr[uint32](10),
	)
	require.NoError(t, err)
	// The bare list is returned rather than the wrapping response.
	require.Equal(t, []types.Approval{{Spender: "cosmos1operator", Expires: types.ExpiresNever()}}, operators)
}

func TestHelper_NumTokens(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t, `{"num_tokens":{}}`, `{"count":7}`)

	count, err := helper.NumTokens(context.Background(), querier)
	require.NoError(t, err)
	require.Equal(t, uint64(7), count)
}

func TestHelper_ContractInfo(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t, `{"contract_info":{}}`, `{"name":"Collection","symbol":"COL"}`)

	info, err := helper.ContractInfo(context.Background(), querier)
	require.NoError(t, err)
	require.Equal(t, &types.CollectionInfo{Name: "Collection", Symbol: "COL"}, info)
}

func TestHelper_CollectionMetadata(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"get_collection_metadata":{}}`,
		`{"name":"Collection","symbol":"COL","extension":null,"updated_at":"1"}`,
	)

	metadata, err := helper.CollectionMetadata(context.Background(), querier)
	require.NoError(t, err)
	require.Equal(t, "Collection", metadata.Name)
	require.Nil(t, metadata.Extension)
}

type customCollectionExtension struct {
	Website string `json:"website"`
}

func TestQueryCollectionMetadata_CustomExtension(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"get_collection_metadata":{}}`,
		`{"name":"Collection","symbol":"COL","extension":{"website":"https://example.com"},"updated_at":"1"}`,
	)

	metadata, err := cw721.QueryCollectionMetadata[customCollectionExtension](context.Background(), helper, querier)
	require.NoError(t, err)
	require.Equal(t, customCollectionExtension{Website: "https://example.com"}, metadata.Extension)
}

type customNftExtension struct {
	Level uint32 `json:"level"`
}

func TestHelper_NftInfo_CustomExtension(t *testing.T) {
	helper := cw721.NewHelper[customNftExtension, types.Empty, types.Empty, types.Empty](testContractAddr)
	querier := newEchoQuerier(t,
		`{"nft_info":{"token_id":"1"}}`,
		`{"token_uri":"ipfs://token/1","extension":{"level":3}}`,
	)

	info, err := helper.NftInfo(context.Background(), querier, "1")
	require.NoError(t, err)
	require.Equal(t, "ipfs://token/1", *info.TokenURI)
	require.Equal(t, customNftExtension{Level: 3}, info.Extension)
}

func TestHelper_AllNftInfo(t *testing.T) {
	helper := cw721.NewHelper[customNftExtension, types.Empty, types.Empty, types.Empty](testContractAddr)
	querier := newEchoQuerier(t,
		`{"all_nft_info":{"token_id":"1","include_expired":false}}`,
		`{"access":{"owner":"cosmos1owner","approvals":[]},"info":{"token_uri":null,"extension":{"level":9}}}`,
	)

	res, err := helper.AllNftInfo(context.Background(), querier, "1", false)
	require.NoError(t, err)
	require.Equal(t, "cosmos1owner", res.Access.Owner)
	require.Equal(t, customNftExtension{Level: 9}, res.Info.Extension)
}

func TestQueryAllNftInfo_RawExtension(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	querier := newEchoQuerier(t,
		`{"all_nft_info":{"token_id":"1","include_expired":true}}`,
		`{"access":{"owner":"cosmos1owner","approvals":[]},"info":{"token_uri":null,"extension":{"anything":[1,2]}}}`,
	)

	res, err := cw721.QueryAllNftInfo[json.RawMessage](context.Background(), helper, querier, "1", true)
	require.NoError(t, err)
	require.JSONEq(t, `{"anything":[1,2]}`, string(res.Info.Extension))
}

func TestHelper_Pagination(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)
	startAfter, limit := types.Ptr("42"), types.Ptr[uint32](10)

	t.Run("tokens", func(t *testing.T) {
		querier := newEchoQuerier(t,
			`{"tokens":{"owner":"cosmos1owner","start_after":"42","limit":10}}`,
			`{"tokens":["43","44"]}`,
		)

		res, err := helper.Tokens(context.Background(), querier, "cosmos1owner", startAfter, limit)
		require.NoError(t, err)
		require.Equal(t, []string{"43", "44"}, res.Tokens)
	})

	t.Run("all_tokens", func(t *testing.T) {
		querier := newEchoQuerier(t,
			`{"all_tokens":{"start_after":"42","limit":10}}`,
			`{"tokens":["43"]}`,
		)

		res, err := helper.AllTokens(context.Background(), querier, startAfter, limit)
		require.NoError(t, err)
		require.Equal(t, []string{"43"}, res.Tokens)
	})

	t.Run("unset pagination is forwarded as null", func(t *testing.T) {
		querier := newEchoQuerier(t,
			`{"all_tokens":{"start_after":null,"limit":null}}`,
			`{"tokens":[]}`,
		)

		res, err := helper.AllTokens(context.Background(), querier, nil, nil)
		require.NoError(t, err)
		require.Empty(t, res.Tokens)
	})
}

func TestHelper_Ownership(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)

	minterQuerier := newEchoQuerier(t,
		`{"get_minter_ownership":{}}`,
		`{"owner":"cosmos1minter","pending_owner":null,"pending_expiry":null}`,
	)
	minter, err := helper.MinterOwnership(context.Background(), minterQuerier)
	require.NoError(t, err)
	require.Equal(t, "cosmos1minter", *minter.Owner)
	require.Nil(t, minter.PendingOwner)

	creatorQuerier := newEchoQuerier(t,
		`{"get_creator_ownership":{}}`,
		`{"owner":"cosmos1creator","pending_owner":"cosmos1next","pending_expiry":{"at_height":5}}`,
	)
	creator, err := helper.CreatorOwnership(context.Background(), creatorQuerier)
	require.NoError(t, err)
	require.Equal(t, "cosmos1next", *creator.PendingOwner)
	require.Equal(t, types.ExpiresAtHeight(5), *creator.PendingExpiry)
}

func TestHelper_WithdrawAddress(t *testing.T) {
	helper := cw721.NewContract(testContractAddr)

	unsetQuerier := newEchoQuerier(t, `{"get_withdraw_address":{}}`, `null`)
	addr, err := helper.WithdrawAddress(context.Background(), unsetQuerier)
	require.NoError(t, err)
	require.Nil(t, addr)

	setQuerier := newEchoQuerier(t, `{"get_withdraw_address":{}}`, `"cosmos1withdraw"`)
	addr, err = helper.WithdrawAddress(context.Background(), setQuerier)
	require.NoError(t, err)
	require.Equal(t, "cosmos1withdraw", *addr)
}

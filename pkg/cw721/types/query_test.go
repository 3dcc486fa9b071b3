package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/cw721/pkg/cw721/types"
)

func TestQueryMsg_RoundTrip(t *testing.T) {
	tests := []struct {
		desc            string
		msg             types.QueryMsg
		expectedVariant string
		expectedJSON    string
	}{
		{
			desc:            "owner_of",
			msg:             types.QueryMsg{OwnerOf: &types.OwnerOfQuery{TokenID: "1", IncludeExpired: types.Ptr(true)}},
			expectedVariant: "owner_of",
			expectedJSON:    `{"owner_of":{"token_id":"1","include_expired":true}}`,
		},
		{
			desc:            "approval",
			msg:             types.QueryMsg{Approval: &types.ApprovalQuery{TokenID: "1", Spender: "cosmos1spender"}},
			expectedVariant: "approval",
			expectedJSON:    `{"approval":{"token_id":"1","spender":"cosmos1spender","include_expired":null}}`,
		},
		{
			desc:            "approvals",
			msg:             types.QueryMsg{Approvals: &types.ApprovalsQuery{TokenID: "1", IncludeExpired: types.Ptr(false)}},
			expectedVariant: "approvals",
			expectedJSON:    `{"approvals":{"token_id":"1","include_expired":false}}`,
		},
		{
			desc: "all_operators",
			msg: types.QueryMsg{AllOperators: &types.AllOperatorsQuery{
				Owner:          "cosmos1owner",
				IncludeExpired: types.Ptr(true),
				StartAfter:     types.Ptr("42"),
				Limit:          types.Ptr[uint32](10),
			}},
			expectedVariant: "all_operators",
			expectedJSON:    `{"all_operators":{"owner":"cosmos1owner","include_expired":true,"start_after":"42","limit":10}}`,
		},
		{
			desc:            "num_tokens",
			msg:             types.QueryMsg{NumTokens: &types.NumTokensQuery{}},
			expectedVariant: "num_tokens",
			expectedJSON:    `{"num_tokens":{}}`,
		},
		{
			desc:            "get_collection_metadata",
			msg:             types.QueryMsg{GetCollectionMetadata: &types.GetCollectionMetadataQuery{}},
			expectedVariant: "get_collection_metadata",
			expectedJSON:    `{"get_collection_metadata":{}}`,
		},
		{
			desc:            "nft_info",
			msg:             types.QueryMsg{NftInfo: &types.NftInfoQuery{TokenID: "1"}},
			expectedVariant: "nft_info",
			expectedJSON:    `{"nft_info":{"token_id":"1"}}`,
		},
		{
			desc:            "all_nft_info",
			msg:             types.QueryMsg{AllNftInfo: &types.AllNftInfoQuery{TokenID: "1", IncludeExpired: types.Ptr(true)}},
			expectedVariant: "all_nft_info",
			expectedJSON:    `{"all_nft_info":{"token_id":"1","include_expired":true}}`,
		},
		{
			desc:            "tokens",
			msg:             types.QueryMsg{Tokens: &types.TokensQuery{Owner: "cosmos1owner", Limit: types.Ptr[uint32](1)}},
			expectedVariant: "tokens",
			expectedJSON:    `{"tokens":{"owner":"cosmos1owner","start_after":null,"limit":1}}`,
		},
		{
			desc:            "all_tokens",
			msg:             types.QueryMsg{AllTokens: &types.AllTokensQuery{}},
			expectedVariant: "all_tokens",
			expectedJSON:    `{"all_tokens":{"start_after":null,"limit":null}}`,
		},
		{
			desc:            "operator",
			msg:             types.QueryMsg{Operator: &types.OperatorQuery{Owner: "cosmos1owner", Operator: "cosmos1operator"}},
			expectedVariant: "operator",
			expectedJSON:    `{"operator":{"owner":"cosmos1owner","operator":"cosmos1operator","include_expired":null}}`,
		},
		{
			desc:            "get_withdraw_address",
			msg:             types.QueryMsg{GetWithdrawAddress: &types.GetWithdrawAddressQuery{}},
			expectedVariant: "get_withdraw_address",
			expectedJSON:    `{"get_withdraw_address":{}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require.NoError(t, test.msg.ValidateBasic())
			require.Equal(t, test.expectedVariant, test.msg.Variant())

			msgBz, err := json.Marshal(test.msg)
			require.NoError(t, err)
			require.JSONEq(t, test.expectedJSON, string(msgBz))

			var decoded types.QueryMsg
			require.NoError(t, json.Unmarshal(msgBz, &decoded))
			require.Equal(t, test.msg, decoded)
		})
	}
}

func TestIsQueryVariant(t *testing.T) {
	for _, name := range []string{"owner_of", "num_tokens", "all_tokens", "get_withdraw_address"} {
		require.True(t, types.IsQueryVariant(name), name)
	}
	for _, name := range []string{"", "unknown", "bogus_variant", "OwnerOf"} {
		require.False(t, types.IsQueryVariant(name), name)
	}
}

func TestQueryMsg_ValidateBasic(t *testing.T) {
	emptyMsg := types.QueryMsg{}
	require.Error(t, emptyMsg.ValidateBasic())
	require.Equal(t, "unknown", emptyMsg.Variant())

	ambiguousMsg := types.QueryMsg{
		NumTokens: &types.NumTokensQuery{},
		AllTokens: &types.AllTokensQuery{},
	}
	require.Error(t, ambiguousMsg.ValidateBasic())
	require.Equal(t, "unknown", ambiguousMsg.Variant())
}

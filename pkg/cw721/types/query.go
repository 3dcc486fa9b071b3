package types

import "fmt"

// QueryMsg is the set of read-only queries a cw721 contract answers. Exactly
// one variant MUST be set. Optional fields are forwarded verbatim; the
// contract owns their defaults.
type QueryMsg struct {
	OwnerOf               *OwnerOfQuery               `json:"owner_of,omitempty"`
	Approval              *ApprovalQuery              `json:"approval,omitempty"`
	Approvals             *ApprovalsQuery             `json:"approvals,omitempty"`
	Operator              *OperatorQuery              `json:"operator,omitempty"`
	AllOperators          *AllOperatorsQuery          `json:"all_operators,omitempty"`
	NumTokens             *NumTokensQuery             `json:"num_tokens,omitempty"`
	ContractInfo          *ContractInfoQuery          `json:"contract_info,omitempty"`
	GetCollectionMetadata *GetCollectionMetadataQuery `json:"get_collection_metadata,omitempty"`
	GetMinterOwnership    *GetMinterOwnershipQuery    `json:"get_minter_ownership,omitempty"`
	GetCreatorOwnership   *GetCreatorOwnershipQuery   `json:"get_creator_ownership,omitempty"`
	NftInfo               *NftInfoQuery               `json:"nft_info,omitempty"`
	AllNftInfo            *AllNftInfoQuery            `json:"all_nft_info,omitempty"`
	Tokens                *TokensQuery                `json:"tokens,omitempty"`
	AllTokens             *AllTokensQuery             `json:"all_tokens,omitempty"`
	GetWithdrawAddress    *GetWithdrawAddressQuery    `json:"get_withdraw_address,omitempty"`
}

// OwnerOfQuery returns the owner of a token, with all approvals.
type OwnerOfQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired"`
}

// ApprovalQuery returns the approval of spender for a token.
type ApprovalQuery struct {
	TokenID        string `json:"token_id"`
	Spender        string `json:"spender"`
	IncludeExpired *bool  `json:"include_expired"`
}

// ApprovalsQuery returns all approvals for a token.
type ApprovalsQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired"`
}

// OperatorQuery returns the approval of operator for all of owner's tokens.
type OperatorQuery struct {
	Owner          string `json:"owner"`
	Operator       string `json:"operator"`
	IncludeExpired *bool  `json:"include_expired"`
}

// AllOperatorsQuery lists all operators of owner.
type AllOperatorsQuery struct {
	Owner          string  `json:"owner"`
	IncludeExpired *bool   `json:"include_expired"`
	StartAfter     *string `json:"start_after"`
	Limit          *uint32 `json:"limit"`
}

// NumTokensQuery returns the total number of tokens issued.
type NumTokensQuery struct{}

// ContractInfoQuery returns the collection name and symbol.
type ContractInfoQuery struct{}

// GetCollectionMetadataQuery returns the collection metadata with its extension.
type GetCollectionMetadataQuery struct{}

// GetMinterOwnershipQuery returns the minter role's ownership.
type GetMinterOwnershipQuery struct{}

// GetCreatorOwnershipQuery returns the creator role's ownership.
type GetCreatorOwnershipQuery struct{}

// NftInfoQuery returns a token's URI and extension.
type NftInfoQuery struct {
	TokenID string `json:"token_id"`
}

// AllNftInfoQuery returns both OwnerOf and NftInfo for a token.
type AllNftInfoQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired"`
}

// TokensQuery lists the token ids owned by owner.
type TokensQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

// AllTokensQuery lists all token ids issued by the contract.
type AllTokensQuery struct {
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

// GetWithdrawAddressQuery returns the configured withdraw address, if any.
type GetWithdrawAddressQuery struct{}

// queryVariants returns the wire name of every variant paired with whether it
// is set on msg.
func (msg QueryMsg) queryVariants() []struct {
	name  string
	isSet bool
} {
	return []struct {
		name  string
		isSet bool
	}{
		{"owner_of", msg.OwnerOf != nil},
		{"approval", msg.Approval != nil},
		{"approvals", msg.Approvals != nil},
		{"operator", msg.Operator != nil},
		{"all_operators", msg.AllOperators != nil},
		{"num_tokens", msg.NumTokens != nil},
		{"contract_info", msg.ContractInfo != nil},
		{"get_collection_metadata", msg.GetCollectionMetadata != nil},
		{"get_minter_ownership", msg.GetMinterOwnership != nil},
		{"get_creator_ownership", msg.GetCreatorOwnership != nil},
		{"nft_info", msg.NftInfo != nil},
		{"all_nft_info", msg.AllNftInfo != nil},
		{"tokens", msg.Tokens != nil},
		{"all_tokens", msg.AllTokens != nil},
		{"get_withdraw_address", msg.GetWithdrawAddress != nil},
	}
}

// Variant returns the wire name of the set variant, or "unknown" if the
// message does not have exactly one variant set.
func (msg QueryMsg) Variant() string {
	if msg.ValidateBasic() != nil {
		return "unknown"
	}
	for _, variant := range msg.queryVariants() {
		if variant.isSet {
			return variant.name
		}
	}
	return "unknown"
}

// IsQueryVariant returns true if name is the wire name of a QueryMsg variant.
func IsQueryVariant(name string) bool {
	for _, variant := range (QueryMsg{}).queryVariants() {
		if variant.name == name {
			return true
		}
	}
	return false
}

// ValidateBasic ensures exactly one variant is set.
func (msg QueryMsg) ValidateBasic() error {
	var numSet int
	for _, variant := range msg.queryVariants() {
		if variant.isSet {
			numSet++
		}
	}
	if numSet != 1 {
		return fmt.Errorf("query message must have exactly one variant set, got %d", numSet)
	}
	return nil
}

package types

// OwnerOfResponse is returned by the owner_of query.
type OwnerOfResponse struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
}

// Approval is a spender's permission, with its expiration.
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

// ApprovalResponse is returned by the approval query.
type ApprovalResponse struct {
	Approval Approval `json:"approval"`
}

// ApprovalsResponse is returned by the approvals query.
type ApprovalsResponse struct {
	Approvals []Approval `json:"approvals"`
}

// OperatorResponse is returned by the operator query.
type OperatorResponse struct {
	Approval Approval `json:"approval"`
}

// OperatorsResponse is returned by the all_operators query.
type OperatorsResponse struct {
	Operators []Approval `json:"operators"`
}

// NumTokensResponse is returned by the num_tokens query.
type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

// CollectionInfo is returned by the contract_info query.
type CollectionInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CollectionMetadata is returned by the get_collection_metadata query.
type CollectionMetadata[TCollExt any] struct {
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Extension TCollExt  `json:"extension"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// NftInfoResponse is returned by the nft_info query.
type NftInfoResponse[TNftExt any] struct {
	TokenURI  *string `json:"token_uri"`
	Extension TNftExt `json:"extension"`
}

// AllNftInfoResponse is returned by the all_nft_info query.
type AllNftInfoResponse[TNftExt any] struct {
	Access OwnerOfResponse          `json:"access"`
	Info   NftInfoResponse[TNftExt] `json:"info"`
}

// TokensResponse is returned by the tokens and all_tokens queries.
type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

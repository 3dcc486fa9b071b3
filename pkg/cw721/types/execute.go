package types

import (
	"fmt"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// ExecuteMsg is the set of state-mutating messages a cw721 contract accepts.
// Exactly one variant MUST be set. TNftExtMsg and TCollExtMsg are the
// contract's NFT and collection extension message types.
type ExecuteMsg[TNftExtMsg, TCollExtMsg any] struct {
	TransferNft            *TransferNft                       `json:"transfer_nft,omitempty"`
	SendNft                *SendNft                           `json:"send_nft,omitempty"`
	Approve                *Approve                           `json:"approve,omitempty"`
	Revoke                 *Revoke                            `json:"revoke,omitempty"`
	ApproveAll             *ApproveAll                        `json:"approve_all,omitempty"`
	RevokeAll              *RevokeAll                         `json:"revoke_all,omitempty"`
	Mint                   *Mint[TNftExtMsg]                  `json:"mint,omitempty"`
	Burn                   *Burn                              `json:"burn,omitempty"`
	UpdateOwnership        *OwnershipAction                   `json:"update_ownership,omitempty"`
	UpdateMinterOwnership  *OwnershipAction                   `json:"update_minter_ownership,omitempty"`
	UpdateCreatorOwnership *OwnershipAction                   `json:"update_creator_ownership,omitempty"`
	UpdateCollectionInfo   *UpdateCollectionInfo[TCollExtMsg] `json:"update_collection_info,omitempty"`
	UpdateNftInfo          *UpdateNftInfo[TNftExtMsg]         `json:"update_nft_info,omitempty"`
	SetWithdrawAddress     *SetWithdrawAddress                `json:"set_withdraw_address,omitempty"`
	RemoveWithdrawAddress  *RemoveWithdrawAddress             `json:"remove_withdraw_address,omitempty"`
	WithdrawFunds          *WithdrawFunds                     `json:"withdraw_funds,omitempty"`
}

// TransferNft moves ownership of a token to recipient.
type TransferNft struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

// SendNft moves ownership of a token to a contract and triggers its receive
// hook with Msg.
type SendNft struct {
	Contract string `json:"contract"`
	TokenID  string `json:"token_id"`
	Msg      []byte `json:"msg"`
}

// Approve allows spender to transfer or send a single token.
type Approve struct {
	Spender string      `json:"spender"`
	TokenID string      `json:"token_id"`
	Expires *Expiration `json:"expires"`
}

// Revoke removes a previously granted single-token approval.
type Revoke struct {
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

// ApproveAll allows operator to transfer or send all of the sender's tokens.
type ApproveAll struct {
	Operator string      `json:"operator"`
	Expires  *Expiration `json:"expires"`
}

// RevokeAll removes a previously granted operator.
type RevokeAll struct {
	Operator string `json:"operator"`
}

// Mint creates a new token owned by Owner.
type Mint[TNftExtMsg any] struct {
	TokenID   string     `json:"token_id"`
	Owner     string     `json:"owner"`
	TokenURI  *string    `json:"token_uri"`
	Extension TNftExtMsg `json:"extension"`
}

// Burn destroys a token.
type Burn struct {
	TokenID string `json:"token_id"`
}

// CollectionInfoMsg carries the collection fields to update.
type CollectionInfoMsg[TCollExtMsg any] struct {
	Name      *string     `json:"name"`
	Symbol    *string     `json:"symbol"`
	Extension TCollExtMsg `json:"extension"`
}

// UpdateCollectionInfo updates the collection's name, symbol and extension.
type UpdateCollectionInfo[TCollExtMsg any] struct {
	CollectionInfo CollectionInfoMsg[TCollExtMsg] `json:"collection_info"`
}

// UpdateNftInfo updates a token's URI and extension.
type UpdateNftInfo[TNftExtMsg any] struct {
	TokenID   string     `json:"token_id"`
	TokenURI  *string    `json:"token_uri"`
	Extension TNftExtMsg `json:"extension"`
}

// SetWithdrawAddress sets the address which receives withdrawn funds.
type SetWithdrawAddress struct {
	Address string `json:"address"`
}

// RemoveWithdrawAddress clears the withdraw address.
type RemoveWithdrawAddress struct{}

// WithdrawFunds sends Amount held by the contract to the withdraw address.
type WithdrawFunds struct {
	Amount cosmostypes.Coin `json:"amount"`
}

// ValidateBasic ensures exactly one variant is set. A message which fails
// validation has no wire representation.
func (msg ExecuteMsg[TNftExtMsg, TCollExtMsg]) ValidateBasic() error {
	numSet := countSet(
		msg.TransferNft != nil,
		msg.SendNft != nil,
		msg.Approve != nil,
		msg.Revoke != nil,
		msg.ApproveAll != nil,
		msg.RevokeAll != nil,
		msg.Mint != nil,
		msg.Burn != nil,
		msg.UpdateOwnership != nil,
		msg.UpdateMinterOwnership != nil,
		msg.UpdateCreatorOwnership != nil,
		msg.UpdateCollectionInfo != nil,
		msg.UpdateNftInfo != nil,
		msg.SetWithdrawAddress != nil,
		msg.RemoveWithdrawAddress != nil,
		msg.WithdrawFunds != nil,
	)
	if numSet != 1 {
		return fmt.Errorf("execute message must have exactly one variant set, got %d", numSet)
	}

	for _, action := range []*OwnershipAction{
		msg.UpdateOwnership,
		msg.UpdateMinterOwnership,
		msg.UpdateCreatorOwnership,
	} {
		if action == nil {
			continue
		}
		if err := action.ValidateBasic(); err != nil {
			return err
		}
	}

	for _, expires := range []*Expiration{
		expiresOf(msg.Approve),
		expiresOfAll(msg.ApproveAll),
	} {
		if expires == nil {
			continue
		}
		if err := expires.ValidateBasic(); err != nil {
			return err
		}
	}

	return nil
}

func expiresOf(approve *Approve) *Expiration {
	if approve == nil {
		return nil
	}
	return approve.Expires
}

func expiresOfAll(approveAll *ApproveAll) *Expiration {
	if approveAll == nil {
		return nil
	}
	return approveAll.Expires
}

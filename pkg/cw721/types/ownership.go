package types

import (
	"encoding/json"
	"fmt"
)

const (
	ownershipActionAccept   = "accept_ownership"
	ownershipActionRenounce = "renounce_ownership"
)

// Ownership describes the current and pending owner of a role (e.g. minter or
// creator) on the contract.
type Ownership struct {
	Owner         *string     `json:"owner"`
	PendingOwner  *string     `json:"pending_owner"`
	PendingExpiry *Expiration `json:"pending_expiry"`
}

// TransferOwnership proposes a new owner for a role.
type TransferOwnership struct {
	NewOwner string      `json:"new_owner"`
	Expiry   *Expiration `json:"expiry"`
}

// OwnershipAction is one of TransferOwnership, AcceptOwnership or
// RenounceOwnership. The latter two are unit variants, encoded as bare strings.
type OwnershipAction struct {
	TransferOwnership *TransferOwnership
	AcceptOwnership   bool
	RenounceOwnership bool
}

// MarshalJSON implements json.Marshaler.
func (a OwnershipAction) MarshalJSON() ([]byte, error) {
	if err := a.ValidateBasic(); err != nil {
		return nil, err
	}

	switch {
	case a.AcceptOwnership:
		return json.Marshal(ownershipActionAccept)
	case a.RenounceOwnership:
		return json.Marshal(ownershipActionRenounce)
	default:
		return json.Marshal(map[string]*TransferOwnership{
			"transfer_ownership": a.TransferOwnership,
		})
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *OwnershipAction) UnmarshalJSON(data []byte) error {
	var unitVariant string
	if err := json.Unmarshal(data, &unitVariant); err == nil {
		switch unitVariant {
		case ownershipActionAccept:
			*a = OwnershipAction{AcceptOwnership: true}
		case ownershipActionRenounce:
			*a = OwnershipAction{RenounceOwnership: true}
		default:
			return fmt.Errorf("unknown ownership action %q", unitVariant)
		}
		return nil
	}

	var transfer struct {
		TransferOwnership *TransferOwnership `json:"transfer_ownership"`
	}
	if err := json.Unmarshal(data, &transfer); err != nil {
		return err
	}
	if transfer.TransferOwnership == nil {
		return fmt.Errorf("unknown ownership action %s", data)
	}

	*a = OwnershipAction{TransferOwnership: transfer.TransferOwnership}
	return nil
}

// ValidateBasic ensures exactly one action is set.
func (a OwnershipAction) ValidateBasic() error {
	numSet := countSet(a.TransferOwnership != nil, a.AcceptOwnership, a.RenounceOwnership)
	if numSet != 1 {
		return fmt.Errorf("ownership action must have exactly one variant set, got %d", numSet)
	}
	return nil
}

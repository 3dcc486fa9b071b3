package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Timestamp is a point in time as nanoseconds since the unix epoch. It is
// encoded as a decimal string.
type Timestamp = math.Uint

// NewTimestamp returns the Timestamp for the given number of nanoseconds.
func NewTimestamp(nanos uint64) Timestamp {
	return math.NewUint(nanos)
}

// Expiration is one of AtHeight, AtTime or Never.
type Expiration struct {
	AtHeight *uint64    `json:"at_height,omitempty"`
	AtTime   *Timestamp `json:"at_time,omitempty"`
	Never    *struct{}  `json:"never,omitempty"`
}

// ExpiresAtHeight returns an Expiration at the given block height.
func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

// ExpiresAtTime returns an Expiration at the given time.
func ExpiresAtTime(at Timestamp) Expiration {
	return Expiration{AtTime: &at}
}

// ExpiresNever returns an Expiration which never expires.
func ExpiresNever() Expiration {
	return Expiration{Never: &struct{}{}}
}

// ValidateBasic ensures exactly one variant is set.
func (e Expiration) ValidateBasic() error {
	numSet := countSet(e.AtHeight != nil, e.AtTime != nil, e.Never != nil)
	if numSet != 1 {
		return fmt.Errorf("expiration must have exactly one variant set, got %d", numSet)
	}
	return nil
}

// String renders the expiration the way the contract formats it in errors.
func (e Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return fmt.Sprintf("expiration height: %d", *e.AtHeight)
	case e.AtTime != nil:
		return fmt.Sprintf("expiration time: %s", e.AtTime.String())
	case e.Never != nil:
		return "expiration: never"
	default:
		return "expiration: unset"
	}
}

// countSet returns the number of true values.
func countSet(isSet ...bool) int {
	var n int
	for _, set := range isSet {
		if set {
			n++
		}
	}
	return n
}

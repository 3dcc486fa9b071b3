package types

import "cosmossdk.io/math"

// Trait is a single NFT attribute.
type Trait struct {
	DisplayType *string `json:"display_type"`
	TraitType   string  `json:"trait_type"`
	Value       string  `json:"value"`
}

// NftExtension is the default, onchain NFT metadata extension.
type NftExtension struct {
	Image           *string `json:"image"`
	ImageData       *string `json:"image_data"`
	ExternalURL     *string `json:"external_url"`
	Description     *string `json:"description"`
	Name            *string `json:"name"`
	Attributes      []Trait `json:"attributes"`
	BackgroundColor *string `json:"background_color"`
	AnimationURL    *string `json:"animation_url"`
	YoutubeURL      *string `json:"youtube_url"`
}

// NftExtensionMsg carries the NFT metadata fields to set on mint or update.
// Nil fields are left unchanged by the contract.
type NftExtensionMsg struct {
	Image           *string  `json:"image"`
	ImageData       *string  `json:"image_data"`
	ExternalURL     *string  `json:"external_url"`
	Description     *string  `json:"description"`
	Name            *string  `json:"name"`
	Attributes      *[]Trait `json:"attributes"`
	BackgroundColor *string  `json:"background_color"`
	AnimationURL    *string  `json:"animation_url"`
	YoutubeURL      *string  `json:"youtube_url"`
}

// RoyaltyInfo is the royalty configuration of a collection.
type RoyaltyInfo struct {
	PaymentAddress string         `json:"payment_address"`
	Share          math.LegacyDec `json:"share"`
}

// CollectionExtension is the default collection metadata extension.
type CollectionExtension struct {
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	ExternalLink     *string      `json:"external_link"`
	ExplicitContent  *bool        `json:"explicit_content"`
	StartTradingTime *Timestamp   `json:"start_trading_time"`
	RoyaltyInfo      *RoyaltyInfo `json:"royalty_info"`
}

// CollectionExtensionMsg carries the collection metadata fields to set on
// instantiation or update. Nil fields are left unchanged by the contract.
type CollectionExtensionMsg struct {
	Description      *string      `json:"description"`
	Image            *string      `json:"image"`
	ExternalLink     *string      `json:"external_link"`
	ExplicitContent  *bool        `json:"explicit_content"`
	StartTradingTime *Timestamp   `json:"start_trading_time"`
	RoyaltyInfo      *RoyaltyInfo `json:"royalty_info"`
}

// Default extension types; a nil pointer encodes as `null`, i.e. no extension.
type (
	DefaultOptionalNftExtension           = *NftExtension
	DefaultOptionalNftExtensionMsg        = *NftExtensionMsg
	DefaultOptionalCollectionExtension    = *CollectionExtension
	DefaultOptionalCollectionExtensionMsg = *CollectionExtensionMsg
)

// Empty is the extension type for contracts which attach no extension data.
type Empty struct{}

// Ptr returns a pointer to a copy of v. Useful for optional arguments.
func Ptr[T any](v T) *T {
	return &v
}

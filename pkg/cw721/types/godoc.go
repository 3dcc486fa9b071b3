// Package types defines the JSON message and response shapes exchanged with a
// cw721 contract. Field names and enum tagging follow the contract's serde
// encoding: snake_case keys, externally tagged variants, and `null` for unset
// optional fields.
package types

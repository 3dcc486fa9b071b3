package flags

import cosmosflags "github.com/cosmos/cosmos-sdk/client/flags"

const (
	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagLogOutput      = "log-output"
	FlagLogOutputUsage = "The logging output (file path); defaults to stderr"
	DefaultLogOutput   = "-"

	FlagOutput      = cosmosflags.FlagOutput
	FlagOutputShort = "o"
	FlagOutputUsage = "Output format (json|yaml)"

	FlagConfig      = "config"
	FlagConfigUsage = "Path to a cw721_config.yaml file; $HOME/.cw721 and the working directory are searched if empty"

	FlagGRPC              = cosmosflags.FlagGRPC
	FlagGRPCUsage         = "The gRPC endpoint (host:port) of a node; takes precedence over --node"
	FlagGRPCInsecure      = cosmosflags.FlagGRPCInsecure
	FlagGRPCInsecureUsage = "Dial the gRPC endpoint without TLS"

	FlagNode      = cosmosflags.FlagNode
	FlagNodeUsage = "The CometBFT RPC endpoint (tcp://host:port) of a node; used when --grpc-addr is empty"

	FlagHeight      = cosmosflags.FlagHeight
	FlagHeightUsage = "Evaluate queries at this height when querying over --node; 0 means latest"

	FlagContract      = "contract"
	FlagContractUsage = "The bech32 address of the cw721 contract"

	FlagFrom      = cosmosflags.FlagFrom
	FlagFromUsage = "The bech32 address of the account which will sign the message"

	FlagIncludeExpired      = "include-expired"
	FlagIncludeExpiredUsage = "Include approvals which have already expired"

	FlagStartAfter      = "start-after"
	FlagStartAfterUsage = "Return results strictly after this key"

	FlagLimit      = "limit"
	FlagLimitUsage = "Maximum number of results to return; the contract's default applies if unset"

	FlagExpiresAtHeight      = "expires-at-height"
	FlagExpiresAtHeightUsage = "Expire the approval at this block height"

	FlagExpiresAtTime      = "expires-at-time"
	FlagExpiresAtTimeUsage = "Expire the approval at this block time (RFC3339)"

	// Config keys, as read by viper from flags, CW721_* environment variables
	// and the config file.
	ConfigKeyGRPCAddr     = "grpc_addr"
	ConfigKeyGRPCInsecure = "grpc_insecure"
	ConfigKeyNode         = "node"
	ConfigKeyHeight       = "height"
	ConfigKeyContract     = "contract"
)

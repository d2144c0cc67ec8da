package config

// Package-level configuration, bound to cobra flags at startup.
var (
	// Network is the chain name passed via --network. Resolved through the
	// networks registry before any command runs.
	Network string

	// EtherscanAPIKey overrides both the per-network env var and the built-in
	// default explorer API key when non-empty.
	EtherscanAPIKey string

	// NodeURL replaces the network's default RPC nodes when non-empty.
	NodeURL string

	// CacheDir overrides the default verified-ABI cache root
	// (~/.decipher/abis) when non-empty.
	CacheDir string

	// JSONOutputFile, when non-empty, receives the decode results as an
	// indented JSON document in addition to the terminal output.
	JSONOutputFile string

	// NoFallback disables the verified-ABI fallback even when a contract
	// address is known, keeping decodes directory-only.
	NoFallback bool

	Debug bool
)

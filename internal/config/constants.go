// Path: internal/config/constants.go
package config

import "time"

const (
	// Server configuration defaults
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

const (
	DefaultConfigFile     = "config/.env"
	DefaultAPIHost        = "127.0.0.1"
	DefaultPort           = 5000
	DefaultProductName    = "TyreConnect Lexicon"
	DefaultProductVersion = "1.0.12"
	DefaultAllowedOrigins = "http://localhost:4200"
)

// Info listing keys. Part of the wire contract.
const (
	InfoKeyVersion = "Version"
	InfoKeyProduct = "Product"
)

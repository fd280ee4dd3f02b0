package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables carrying the signer secrets.
const (
	EnvPrivateKey    = "POLYMARKET_TRADER_PRIVATE_KEY"
	EnvWalletAddress = "POLYMARKET_TRADER_ADDRESS"
)

// Config holds runtime configuration for the credential bootstrap tool.
type Config struct {
	PrivateKey    string
	WalletAddress string

	ClobURL string
	ChainID int
	Nonce   int

	LogLevel string
}

// MissingError reports required environment values that are absent or empty.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Vars, ", "))
}

// envOrDefault returns the value of an environment variable or a default.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) (int, error) {
	if raw := os.Getenv(key); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return val, nil
	}

	return def, nil
}

// LoadConfig loads configuration from environment variables, reading a
// local .env file first when one is present. Both signer values are
// required; everything else defaults to Polygon mainnet production.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // best-effort

	chainID, err := envIntOrDefault("CHAIN_ID", 137)
	if err != nil {
		return Config{}, err
	}
	nonce, err := envIntOrDefault("CLOB_AUTH_NONCE", 0)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		PrivateKey:    os.Getenv(EnvPrivateKey),
		WalletAddress: os.Getenv(EnvWalletAddress),

		ClobURL: envOrDefault("CLOB_API_URL", "https://clob.polymarket.com"),
		ChainID: chainID,
		Nonce:   nonce,

		LogLevel: envOrDefault("LOG_LEVEL", "info"),
	}

	var missing []string
	if cfg.PrivateKey == "" {
		missing = append(missing, EnvPrivateKey)
	}
	if cfg.WalletAddress == "" {
		missing = append(missing, EnvWalletAddress)
	}
	if len(missing) > 0 {
		return Config{}, &MissingError{Vars: missing}
	}

	return cfg, nil
}

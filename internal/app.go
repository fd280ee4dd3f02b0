// Package internal wires the credential bootstrap tool's dependencies.
package internal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/0xpolycred/polymarket-apikey/internal/bootstrap"
	"github.com/0xpolycred/polymarket-apikey/internal/clob"
	"github.com/0xpolycred/polymarket-apikey/internal/config"
	"github.com/rs/zerolog"
)

// maxClockSkew is the local/server clock divergence above which the auth
// timestamps embedded in request signatures start getting rejected.
const maxClockSkew = 30 * time.Second

// App centralizes dependency wiring for the bootstrap tool.
type App struct {
	cfg    config.Config
	logger zerolog.Logger

	client    *clob.Client
	bootstrap *bootstrap.Bootstrap
}

// NewApp builds an App with all required dependencies. No network I/O
// happens here; remote calls start in Run.
func NewApp(cfg config.Config, logger zerolog.Logger) (*App, error) {
	signer, err := clob.NewSignerFromHex(cfg.PrivateKey, clob.Chain(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("initialize signer: %w", err)
	}

	// EOA signing means the funder is the signer's own wallet.
	if !strings.EqualFold(cfg.WalletAddress, signer.Address().Hex()) {
		logger.Warn().
			Str("configured", cfg.WalletAddress).
			Str("derived", signer.Address().Hex()).
			Msg("wallet address does not match the address derived from the private key")
	}

	client := clob.NewClient(clob.ClientConfig{
		Host:          cfg.ClobURL,
		ChainID:       clob.Chain(cfg.ChainID),
		SignatureType: clob.SignatureEOA,
		Funder:        cfg.WalletAddress,
		Nonce:         int64(cfg.Nonce),
	}, signer, logger)

	return &App{
		cfg:       cfg,
		logger:    logger,
		client:    client,
		bootstrap: bootstrap.New(client, os.Stdout, logger),
	}, nil
}

// Run checks the server clock and executes the bootstrap flow.
func (a *App) Run(ctx context.Context) error {
	a.checkClockSkew(ctx)
	return a.bootstrap.Run(ctx)
}

// checkClockSkew warns when the local clock diverges from the CLOB server
// clock far enough to invalidate signed timestamps. Diagnostic only; a
// failed probe must not mask the real flow.
func (a *App) checkClockSkew(ctx context.Context) {
	serverTime, err := a.client.ServerTime(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("could not fetch clob server time")
		return
	}
	if skew := time.Since(serverTime); skew > maxClockSkew || skew < -maxClockSkew {
		a.logger.Warn().Dur("skew", skew).Msg("local clock diverges from clob server time")
	}
}

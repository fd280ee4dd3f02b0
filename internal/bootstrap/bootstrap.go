// Package bootstrap implements the one-shot credential provisioning flow:
// request (or re-derive) CLOB API credentials for a signer, print them for
// the operator to copy out, then verify them with an authenticated call.
package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/0xpolycred/polymarket-apikey/internal/clob"
	"github.com/rs/zerolog"
)

// CredentialService is the slice of the CLOB client the bootstrap needs.
type CredentialService interface {
	CreateOrDeriveAPIKey(ctx context.Context) (clob.APICreds, error)
	SetAPICreds(creds clob.APICreds)
	GetAPIKeys(ctx context.Context) ([]string, error)
}

// Bootstrap runs the provisioning flow against a CredentialService and
// writes operator-facing output, secrets included, to out.
type Bootstrap struct {
	svc    CredentialService
	out    io.Writer
	logger zerolog.Logger
}

func New(svc CredentialService, out io.Writer, logger zerolog.Logger) *Bootstrap {
	return &Bootstrap{svc: svc, out: out, logger: logger}
}

const rule = "=================================================="

// Run executes the flow. A create-or-derive failure is returned as the
// fatal error. Verification failure only prints a warning: by that point
// the credentials already exist server-side, so the run still counts as a
// success.
func (b *Bootstrap) Run(ctx context.Context) error {
	b.logger.Info().Msg("requesting api credentials")
	creds, err := b.svc.CreateOrDeriveAPIKey(ctx)
	if err != nil {
		return fmt.Errorf("create or derive api credentials: %w", err)
	}

	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, rule)
	fmt.Fprintln(b.out, "API credentials ready. Store them somewhere safe:")
	fmt.Fprintln(b.out, rule)
	fmt.Fprintf(b.out, "API_KEY      = %s\n", creds.Key)
	fmt.Fprintf(b.out, "API_SECRET   = %s\n", creds.Secret)
	fmt.Fprintf(b.out, "API_PASSPHRASE = %s\n", creds.Passphrase)
	fmt.Fprintln(b.out, rule)

	b.svc.SetAPICreds(creds)

	b.logger.Info().Msg("verifying api credentials")
	keys, err := b.svc.GetAPIKeys(ctx)
	if err != nil {
		b.logger.Warn().Err(err).Msg("credential verification failed")
		fmt.Fprintf(b.out, "\nWARNING: verification failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(b.out, "\nVerification succeeded: account has %d API key(s)\n", len(keys))
	return nil
}

// Package clob implements the slice of the Polymarket CLOB API needed to
// provision and verify trading credentials: EIP-712 (level 1) auth for key
// issuance and HMAC (level 2) auth for key management.
package clob

import "fmt"

// Chain identifies the EVM network the CLOB instance settles on.
type Chain int

const (
	Polygon Chain = 137
	Amoy    Chain = 80002
)

// SignatureType selects how auth payloads and orders are signed.
type SignatureType int

const (
	// SignatureEOA signs with the wallet key directly; the funding address
	// is the signer's own address.
	SignatureEOA SignatureType = iota
	SignaturePolyProxy
	SignaturePolyGnosisSafe
)

// APICreds is the credential triple the CLOB issues per signer.
type APICreds struct {
	Key        string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// APIError describes a failed call to the CLOB API, either a transport
// error or a non-2xx reply with the server body attached.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("clob %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("clob %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

package clob

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
)

// Header names the CLOB expects on authenticated requests. They are sent
// verbatim; Go's header canonicalization would mangle the underscores, so
// the client assigns them into the header map directly.
const (
	headerAddress    = "POLY_ADDRESS"
	headerSignature  = "POLY_SIGNATURE"
	headerTimestamp  = "POLY_TIMESTAMP"
	headerNonce      = "POLY_NONCE"
	headerAPIKey     = "POLY_API_KEY"
	headerPassphrase = "POLY_PASSPHRASE"
)

// l1AuthHeaders builds the EIP-712 signature headers used to create or
// derive API credentials.
func (c *Client) l1AuthHeaders(timestamp string) (map[string]string, error) {
	sig, err := c.signer.SignClobAuth(timestamp, c.nonce)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		headerAddress:   c.signer.Address().Hex(),
		headerSignature: sig,
		headerTimestamp: timestamp,
		headerNonce:     strconv.FormatInt(c.nonce, 10),
	}, nil
}

// l2AuthHeaders builds the HMAC headers used for API-key management calls.
// Requires credentials to be set on the client first.
func (c *Client) l2AuthHeaders(timestamp, method, requestPath string, body []byte) (map[string]string, error) {
	if c.creds == nil {
		return nil, fmt.Errorf("api credentials are not set")
	}
	sig, err := buildHMACSignature(c.creds.Secret, timestamp, method, requestPath, body)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		headerAddress:    c.signer.Address().Hex(),
		headerSignature:  sig,
		headerTimestamp:  timestamp,
		headerAPIKey:     c.creds.Key,
		headerPassphrase: c.creds.Passphrase,
	}, nil
}

// buildHMACSignature signs timestamp+method+path(+body) with the
// base64url-decoded API secret and returns the base64url-encoded digest.
func buildHMACSignature(secret, timestamp, method, requestPath string, body []byte) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		// Some tooling strips the padding off the issued secret.
		key, err = base64.RawURLEncoding.DecodeString(secret)
		if err != nil {
			return "", fmt.Errorf("decode api secret: %w", err)
		}
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp))
	mac.Write([]byte(method))
	mac.Write([]byte(requestPath))
	if len(body) > 0 {
		mac.Write(body)
	}
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

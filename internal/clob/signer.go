package clob

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// clobAuthMessage is the fixed attestation string inside the ClobAuth
// struct. The server rejects any other wording.
const clobAuthMessage = "This message attests that I control the given wallet"

// Signer holds the secp256k1 key that authorizes credential operations.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID Chain
}

// NewSignerFromHex parses a hex-encoded private key, with or without the
// 0x prefix. No network I/O.
func NewSignerFromHex(hexKey string, chainID Chain) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// Address returns the EOA address derived from the private key.
func (s *Signer) Address() common.Address { return s.address }

// SignClobAuth signs the EIP-712 ClobAuth payload used for level-1
// authentication. Returns the 65-byte r||s||v signature with v in {27,28},
// hex encoded.
func (s *Signer) SignClobAuth(timestamp string, nonce int64) (string, error) {
	hash, err := s.clobAuthHash(timestamp, nonce)
	if err != nil {
		return "", err
	}
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return "", fmt.Errorf("sign clob auth: %w", err)
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

func (s *Signer) clobAuthHash(timestamp string, nonce int64) ([]byte, error) {
	typed := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"ClobAuth": []apitypes.Type{
				{Name: "address", Type: "address"},
				{Name: "timestamp", Type: "string"},
				{Name: "nonce", Type: "uint256"},
				{Name: "message", Type: "string"},
			},
		},
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    "ClobAuthDomain",
			Version: "1",
			ChainId: math.NewHexOrDecimal256(int64(s.chainID)),
		},
		Message: apitypes.TypedDataMessage{
			"address":   s.address.Hex(),
			"timestamp": timestamp,
			"nonce":     math.NewHexOrDecimal256(nonce),
			"message":   clobAuthMessage,
		},
	}
	hash, _, err := apitypes.TypedDataAndHash(typed)
	if err != nil {
		return nil, fmt.Errorf("hash clob auth payload: %w", err)
	}
	return hash, nil
}

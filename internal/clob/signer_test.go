package clob

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// Throwaway well-known test key.
const (
	testKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewSignerFromHex(t *testing.T) {
	signer, err := NewSignerFromHex(testKeyHex, Polygon)
	require.NoError(t, err)
	require.Equal(t, testAddress, signer.Address().Hex())
}

func TestNewSignerFromHexWithPrefix(t *testing.T) {
	signer, err := NewSignerFromHex("0x"+testKeyHex, Polygon)
	require.NoError(t, err)
	require.Equal(t, testAddress, signer.Address().Hex())
}

func TestNewSignerFromHexInvalid(t *testing.T) {
	_, err := NewSignerFromHex("not-a-key", Polygon)
	require.Error(t, err)
}

func TestSignClobAuthRecoversSigner(t *testing.T) {
	signer, err := NewSignerFromHex(testKeyHex, Polygon)
	require.NoError(t, err)

	sigHex, err := signer.SignClobAuth("1700000000", 0)
	require.NoError(t, err)

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	require.Contains(t, []byte{27, 28}, sig[64])

	hash, err := signer.clobAuthHash("1700000000", 0)
	require.NoError(t, err)

	recoverable := make([]byte, 65)
	copy(recoverable, sig)
	recoverable[64] -= 27
	pub, err := crypto.SigToPub(hash, recoverable)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pub))
}

func TestSignClobAuthDeterministic(t *testing.T) {
	signer, err := NewSignerFromHex(testKeyHex, Polygon)
	require.NoError(t, err)

	a, err := signer.SignClobAuth("1700000000", 0)
	require.NoError(t, err)
	b, err := signer.SignClobAuth("1700000000", 0)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSignClobAuthVariesWithInputs(t *testing.T) {
	signer, err := NewSignerFromHex(testKeyHex, Polygon)
	require.NoError(t, err)
	amoy, err := NewSignerFromHex(testKeyHex, Amoy)
	require.NoError(t, err)

	base, err := signer.SignClobAuth("1700000000", 0)
	require.NoError(t, err)

	laterTS, err := signer.SignClobAuth("1700000001", 0)
	require.NoError(t, err)
	require.NotEqual(t, base, laterTS)

	otherNonce, err := signer.SignClobAuth("1700000000", 1)
	require.NoError(t, err)
	require.NotEqual(t, base, otherNonce)

	otherChain, err := amoy.SignClobAuth("1700000000", 0)
	require.NoError(t, err)
	require.NotEqual(t, base, otherChain)
}

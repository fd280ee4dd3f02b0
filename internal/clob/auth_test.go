package clob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// base64url of "clob-secret-0123456789abcdefghij".
const testSecret = "Y2xvYi1zZWNyZXQtMDEyMzQ1Njc4OWFiY2RlZmdoaWo="

func TestBuildHMACSignature(t *testing.T) {
	sig, err := buildHMACSignature(testSecret, "1700000000", "GET", "/auth/api-keys", nil)
	require.NoError(t, err)
	require.Equal(t, "rMJqHjl0HjiUq_JWDkimOl-EOu8AQiYPrkjI6o0-ddI=", sig)
}

func TestBuildHMACSignatureWithBody(t *testing.T) {
	sig, err := buildHMACSignature(testSecret, "1700000000", "POST", "/order", []byte(`{"hash":"0x123"}`))
	require.NoError(t, err)
	require.Equal(t, "TkOsFtC4AdqAy72XjggeDAiS0JYlJaCNz6k_KGscpK4=", sig)
}

func TestBuildHMACSignatureUnpaddedSecret(t *testing.T) {
	unpadded := strings.TrimRight(testSecret, "=")
	sig, err := buildHMACSignature(unpadded, "1700000000", "GET", "/auth/api-keys", nil)
	require.NoError(t, err)
	require.Equal(t, "rMJqHjl0HjiUq_JWDkimOl-EOu8AQiYPrkjI6o0-ddI=", sig)
}

func TestBuildHMACSignatureBadSecret(t *testing.T) {
	_, err := buildHMACSignature("!!not base64!!", "1700000000", "GET", "/auth/api-keys", nil)
	require.Error(t, err)
}

package signing_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
)

const eventID = "btcusd-2026-10-17"

// announcement is an oracle event with one nonce per digit.
type announcement struct {
	key     *secp256k1.PrivateKey
	secrets []secp256k1.ModNScalar
	nonces  []*secp256k1.PublicKey
}

func newAnnouncement(t *testing.T, numDigits int) *announcement {
	t.Helper()

	seed := sha256.Sum256([]byte("oracle key"))
	key := secp256k1.PrivKeyFromBytes(seed[:])

	a := &announcement{key: key}
	for i := range numDigits {
		n, err := oracle.DeriveNonce(key, eventID, uint32(i))
		require.NoError(t, err)
		a.secrets = append(a.secrets, n.Secret)
		a.nonces = append(a.nonces, n.Public)
	}

	return a
}

func (a *announcement) oraclePubkey() string {
	return hex.EncodeToString(schnorr.SerializePubKey(a.key.PubKey()))
}

func (a *announcement) nonceList() string {
	parts := make([]string, len(a.nonces))
	for i, n := range a.nonces {
		parts[i] = hex.EncodeToString(schnorr.SerializePubKey(n))
	}
	return strings.Join(parts, ",")
}

func (a *announcement) attest(digits []int) []secp256k1.ModNScalar {
	out := make([]secp256k1.ModNScalar, len(digits))
	for i, d := range digits {
		out[i] = oracle.AttestDigit(a.key, &a.secrets[i], d)
	}
	return out
}

func sighashes(n int) ([][32]byte, string) {
	hashes := make([][32]byte, n)
	parts := make([]string, n)
	for i := range hashes {
		hashes[i] = sha256.Sum256(fmt.Appendf(nil, "cet-%d", i))
		parts[i] = hex.EncodeToString(hashes[i][:])
	}
	return hashes, strings.Join(parts, ",")
}

func publicKey(t *testing.T, s *api.Server, index int64) *secp256k1.PublicKey {
	t.Helper()

	pub, err := s.Keys.GetPublicKey(context.Background(), "", index)
	require.NoError(t, err)

	return pub
}

func publicKeyHex(t *testing.T, s *api.Server, index int64) string {
	t.Helper()

	return secp.EncodePoint(publicKey(t, s, index))
}

func hexOf(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

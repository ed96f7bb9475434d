package signer_test

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
	"lukechampine.com/frand"
)

func newSigner(t *testing.T) (signer.Service, *hdkey.Context) {
	t.Helper()

	keyCtx, err := hdkey.NewContext(frand.Bytes(32), &chaincfg.RegressionNetParams, "")
	require.NoError(t, err)

	ring := keyring.NewManager(0)
	ring.Activate(keyCtx)

	return signer.NewService(ring, nil), keyCtx
}

func TestSignHash(t *testing.T) {
	svc, keyCtx := newSigner(t)

	pub, err := keyCtx.PublicKey(3)
	require.NoError(t, err)

	hash := sha256.Sum256([]byte("cet"))
	resp, err := svc.SignHash(context.Background(), &signer.SignHashRequest{
		Index:        3,
		Hash:         hash,
		SignerPubkey: pub,
	})
	require.NoError(t, err)

	assert.True(t, signer.Verify(pub, hash[:], resp.DER))
	assert.True(t, signer.IsLowS(resp.Signature))
	require.Len(t, resp.Compact, 64)

	r, s := resp.Signature.R(), resp.Signature.S()
	rb, sb := r.Bytes(), s.Bytes()
	assert.Equal(t, rb[:], resp.Compact[:32])
	assert.Equal(t, sb[:], resp.Compact[32:])

	again, err := svc.SignHash(context.Background(), &signer.SignHashRequest{
		Xpub:         keyCtx.Xpub(),
		Index:        3,
		Hash:         hash,
		SignerPubkey: pub,
	})
	require.NoError(t, err)
	assert.Equal(t, resp.DER, again.DER, "RFC6979 signatures are deterministic")
}

func TestSignHashMismatch(t *testing.T) {
	svc, keyCtx := newSigner(t)

	other, err := keyCtx.PublicKey(4)
	require.NoError(t, err)

	_, err = svc.SignHash(context.Background(), &signer.SignHashRequest{
		Index:        3,
		Hash:         sha256.Sum256([]byte("cet")),
		SignerPubkey: other,
	})
	require.ErrorIs(t, err, dlcerr.ErrSignerMismatch)
}

func TestSignHashNotInitialized(t *testing.T) {
	svc := signer.NewService(keyring.NewManager(0), nil)

	_, err := svc.SignHash(context.Background(), &signer.SignHashRequest{})
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)
}

func TestVerifyRejectsTamperedHash(t *testing.T) {
	_, keyCtx := newSigner(t)

	priv, err := keyCtx.PrivateKey(0)
	require.NoError(t, err)
	defer priv.Zero()

	hash := sha256.Sum256([]byte("a"))
	resp := signer.Sign(priv, hash[:])

	hash[0] ^= 0xff
	assert.False(t, signer.Verify(priv.PubKey(), hash[:], resp.DER))
	assert.False(t, signer.Verify(priv.PubKey(), hash[:], []byte{0x30}))
}

func TestVerifyRejectsHighS(t *testing.T) {
	_, keyCtx := newSigner(t)

	priv, err := keyCtx.PrivateKey(1)
	require.NoError(t, err)
	defer priv.Zero()

	hash := sha256.Sum256([]byte("b"))
	resp := signer.Sign(priv, hash[:])

	r, s := resp.Signature.R(), resp.Signature.S()
	s.Negate()
	high := ecdsa.NewSignature(&r, &s)

	assert.False(t, signer.IsLowS(high))

	// DER serialisation canonicalises s
	assert.Equal(t, resp.DER, high.Serialize())
}

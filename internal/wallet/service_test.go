package wallet_test

import (
	"context"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
)

const (
	vector1Entropy = "000102030405060708090a0b0c0d0e0f"
	vector1Xpub    = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	entropy32      = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	entropy32Tpub  = "tpubD6NzVbkrYhZ4XXAd6LwWmZTSQQcKYMRXABPpB54NUUG1xZZk9SSyr58oE46p3vfw3nVmEra3jLU5iPg3NB5tjwaVXwuUomtEJfyNyFDEx27"
	testMnemonic   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func newService(basePath string) (wallet.Service, keyring.Manager) {
	ring := keyring.NewManager(keyring.DefaultMaxContexts)
	return wallet.NewService(ring, nil, basePath, "mainnet"), ring
}

func TestInitWithEntropy(t *testing.T) {
	ctx := context.Background()
	svc, ring := newService("m")

	xpub, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy})
	require.NoError(t, err)
	assert.Equal(t, vector1Xpub, xpub)
	assert.True(t, ring.IsInitialized())

	again, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy})
	require.NoError(t, err)
	assert.Equal(t, xpub, again)

	testnet, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy, Network: "testnet"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(testnet, "tpub"), testnet)

	active, err := ring.Active()
	require.NoError(t, err)
	assert.Equal(t, testnet, active.Xpub())
}

func TestInitWithEntropyTestnet(t *testing.T) {
	ctx := context.Background()
	svc, ring := newService("m")

	xpub, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: entropy32, Network: "testnet"})
	require.NoError(t, err)
	assert.Equal(t, entropy32Tpub, xpub)

	again, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: entropy32, Network: "testnet"})
	require.NoError(t, err)
	assert.Equal(t, xpub, again)

	active, err := ring.Active()
	require.NoError(t, err)
	assert.Equal(t, entropy32Tpub, active.Xpub())
}

func TestInitWithEntropyRejects(t *testing.T) {
	ctx := context.Background()
	svc, ring := newService("m")

	_, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: "00"})
	require.ErrorIs(t, err, dlcerr.ErrInvalidEntropy)

	_, err = svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: "zz"})
	require.ErrorIs(t, err, dlcerr.ErrInvalidEntropy)

	_, err = svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy, Network: "dogecoin"})
	require.ErrorIs(t, err, dlcerr.ErrInvalidNetwork)

	assert.False(t, ring.IsInitialized(), "failed requests leave the key ring untouched")
}

func TestDeriveXpubFromMnemonic(t *testing.T) {
	ctx := context.Background()
	svc, ring := newService("m")

	xpub, err := svc.DeriveXpubFromMnemonic(ctx, &wallet.DeriveXpubRequest{Mnemonic: testMnemonic})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(xpub, "xpub"), xpub)
	assert.False(t, ring.IsInitialized(), "derivation without activate is pure")

	withPassphrase, err := svc.DeriveXpubFromMnemonic(ctx, &wallet.DeriveXpubRequest{Mnemonic: testMnemonic, Passphrase: "TREZOR"})
	require.NoError(t, err)
	assert.NotEqual(t, xpub, withPassphrase)

	activated, err := svc.DeriveXpubFromMnemonic(ctx, &wallet.DeriveXpubRequest{Mnemonic: testMnemonic, Activate: true})
	require.NoError(t, err)
	assert.Equal(t, xpub, activated)

	active, err := ring.Active()
	require.NoError(t, err)
	assert.Equal(t, xpub, active.Xpub())

	_, err = svc.DeriveXpubFromMnemonic(ctx, &wallet.DeriveXpubRequest{Mnemonic: "abandon abandon abandon"})
	require.ErrorIs(t, err, dlcerr.ErrInvalidMnemonic)
}

func TestGetPublicKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService("m/0'")

	_, err := svc.GetPublicKey(ctx, "", 1)
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)

	xpub, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy})
	require.NoError(t, err)

	// BIP32 test vector 1, chain m/0H/1
	pub, err := svc.GetPublicKey(ctx, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c", hex.EncodeToString(pub.SerializeCompressed()))

	byHandle, err := svc.GetPublicKey(ctx, xpub, 1)
	require.NoError(t, err)
	assert.True(t, pub.IsEqual(byHandle))

	_, err = svc.GetPublicKey(ctx, "", 1<<31)
	require.ErrorIs(t, err, dlcerr.ErrDerivationOverflow)

	_, err = svc.GetPublicKey(ctx, "xpub-unknown", 1)
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)
}

func TestReinitializationRacesWithDerivation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService("m")

	_, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{Entropy: vector1Entropy})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.GetPublicKey(ctx, "", int64(i))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

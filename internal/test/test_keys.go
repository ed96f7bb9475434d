package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"
)

const (
	// Entropy of BIP32 test vector 1.
	TestEntropy = "000102030405060708090a0b0c0d0e0f"

	// Mnemonic of the all-zero 128 bit entropy.
	TestMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	TestNetwork = "testnet"
)

// TestScryptParams keep keystore tests fast.
var TestScryptParams = &keystore.ScryptParams{DKLen: 32, N: 1 << 10, R: 8, P: 1}

// ActivateTestKey initializes the key ring of s from TestEntropy and returns its xpub.
func ActivateTestKey(t *testing.T, s *api.Server) string {
	t.Helper()

	xpub, err := s.Keys.InitWithEntropy(context.Background(), &wallet.InitWithEntropyRequest{
		Entropy: TestEntropy,
		Network: TestNetwork,
	})
	require.NoError(t, err)

	return xpub
}

// WithTestKeystore writes a keystore holding TestMnemonic into a temp dir.
func WithTestKeystore(t *testing.T, password string, closure func(svc keystore.Service, path string)) {
	t.Helper()

	svc := keystore.NewService(TestScryptParams)
	path := filepath.Join(t.TempDir(), "keystore.json")

	_, err := svc.Create(context.Background(), path, &keystore.CreateRequest{
		Mnemonic: TestMnemonic,
		Password: password,
		Network:  TestNetwork,
	})
	require.NoError(t, err)

	closure(svc, path)
}

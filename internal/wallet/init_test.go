package wallet_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/test"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"
)

func TestInitializeKeystore(t *testing.T) {
	test.WithTestKeystore(t, "pw", func(svc keystore.Service, path string) {
		ctx := context.Background()
		ring := keyring.NewManager(keyring.DefaultMaxContexts)

		metricsService, err := metrics.New(config.Server{})
		require.NoError(t, err)

		require.NoError(t, wallet.InitializeKeystore(ctx, path, "pw", ring, svc, metricsService))

		file, err := svc.Load(ctx, path)
		require.NoError(t, err)

		active, err := ring.Active()
		require.NoError(t, err)
		assert.Equal(t, file.Xpub, active.Xpub())

		expected := `
# HELP dlcsigner_key_contexts Number of key contexts held in memory.
# TYPE dlcsigner_key_contexts gauge
dlcsigner_key_contexts 1
`
		require.NoError(t, testutil.GatherAndCompare(metricsService.Registry, strings.NewReader(expected), "dlcsigner_key_contexts"))
	})
}

func TestInitializeKeystoreWrongPassword(t *testing.T) {
	test.WithTestKeystore(t, "pw", func(svc keystore.Service, path string) {
		ring := keyring.NewManager(keyring.DefaultMaxContexts)

		require.Error(t, wallet.InitializeKeystore(context.Background(), path, "nope", ring, svc, nil))
		assert.False(t, ring.IsInitialized())
	})
}

func TestInitializeKeystoreMissingFile(t *testing.T) {
	ring := keyring.NewManager(keyring.DefaultMaxContexts)
	svc := keystore.NewService(test.TestScryptParams)

	err := wallet.InitializeKeystore(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "pw", ring, svc, nil)
	require.Error(t, err)
	assert.False(t, ring.IsInitialized())
}

package keyring_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
)

func newContext(t *testing.T, fill byte) *hdkey.Context {
	t.Helper()

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = fill
	}

	ctx, err := hdkey.NewContext(seed, &chaincfg.RegressionNetParams, "")
	require.NoError(t, err)
	return ctx
}

func TestActiveBeforeInit(t *testing.T) {
	m := keyring.NewManager(0)

	assert.False(t, m.IsInitialized())
	_, err := m.Active()
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)

	_, err = m.Resolve("")
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)
}

func TestActivateReplacesActive(t *testing.T) {
	m := keyring.NewManager(0)
	first := newContext(t, 1)
	second := newContext(t, 2)

	m.Activate(first)
	active, err := m.Active()
	require.NoError(t, err)
	assert.Same(t, first, active)

	m.Activate(second)
	active, err = m.Active()
	require.NoError(t, err)
	assert.Same(t, second, active)

	// the replaced context stays usable and addressable
	old, err := m.Resolve(first.Xpub())
	require.NoError(t, err)
	_, err = old.PublicKey(0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestResolveUnknownXpub(t *testing.T) {
	m := keyring.NewManager(0)
	m.Activate(newContext(t, 1))

	_, err := m.Resolve("xpub-unknown")
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)
}

func TestRegisterEvictsInactive(t *testing.T) {
	m := keyring.NewManager(2)
	active := newContext(t, 1)
	m.Activate(active)
	m.Register(newContext(t, 2))
	require.Equal(t, 2, m.Len())

	m.Register(newContext(t, 3))
	assert.Equal(t, 2, m.Len())

	_, err := m.Resolve(active.Xpub())
	require.NoError(t, err)
}

func TestClear(t *testing.T) {
	m := keyring.NewManager(0)
	m.Activate(newContext(t, 1))

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Equal(t, 0, m.Len())
}

func TestConcurrentActivateAndRead(t *testing.T) {
	m := keyring.NewManager(4)
	contexts := []*hdkey.Context{newContext(t, 1), newContext(t, 2), newContext(t, 3)}
	m.Activate(contexts[0])

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				m.Activate(contexts[i%len(contexts)])
				return
			}

			ctx, err := m.Active()
			if !assert.NoError(t, err) {
				return
			}
			_, err = ctx.PublicKey(uint32(i))
			assert.NoError(t, err, fmt.Sprintf("goroutine %d", i))
		}(i)
	}
	wg.Wait()
}

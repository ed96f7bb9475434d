package keyring

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
)

// DefaultMaxContexts bounds the number of registered contexts.
const DefaultMaxContexts = 16

// manager keeps the active context behind a read-mostly lock. Contexts are
// immutable, so replacing the active one never affects derivations that
// already obtained the previous pointer.
type manager struct {
	mu          sync.RWMutex
	active      *hdkey.Context
	byXpub      *xsync.MapOf[string, *hdkey.Context]
	maxContexts int
}

// NewManager creates a new key ring Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager(maxContexts int) Manager {
	if maxContexts <= 0 {
		maxContexts = DefaultMaxContexts
	}

	return &manager{
		byXpub:      xsync.NewMapOf[string, *hdkey.Context](),
		maxContexts: maxContexts,
	}
}

// Activate registers ctx and makes it the active context
func (m *manager) Activate(ctx *hdkey.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register(ctx)
	m.active = ctx

	log.Debug().
		Str("component", "keyring").
		Str("xpub", ctx.Xpub()).
		Str("network", ctx.Network().Name).
		Msg("Activated key context")
}

// Register makes ctx addressable by its xpub without activating it
func (m *manager) Register(ctx *hdkey.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register(ctx)
}

// register must be called with mu held.
func (m *manager) register(ctx *hdkey.Context) {
	if _, exists := m.byXpub.Load(ctx.Xpub()); !exists && m.byXpub.Size() >= m.maxContexts {
		evicted := 0
		m.byXpub.Range(func(xpub string, c *hdkey.Context) bool {
			if c != m.active {
				m.byXpub.Delete(xpub)
				evicted++
			}
			return true
		})

		log.Warn().
			Str("component", "keyring").
			Int("evicted", evicted).
			Int("max_contexts", m.maxContexts).
			Msg("Key ring full, evicted inactive contexts")
	}

	m.byXpub.Store(ctx.Xpub(), ctx)
}

// Active returns the active context
func (m *manager) Active() (*hdkey.Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active == nil {
		return nil, dlcerr.New(dlcerr.KindKeyNotInitialized, "", "no master key has been initialized")
	}

	return m.active, nil
}

// Resolve returns the context registered for xpub, or the active one if xpub is empty
func (m *manager) Resolve(xpub string) (*hdkey.Context, error) {
	if xpub == "" {
		return m.Active()
	}

	ctx, ok := m.byXpub.Load(xpub)
	if !ok {
		return nil, dlcerr.New(dlcerr.KindKeyNotInitialized, "xpub", "no key context for %s", xpub)
	}

	return ctx, nil
}

// IsInitialized checks if an active context exists
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active != nil
}

// Len returns the number of registered contexts
func (m *manager) Len() int {
	return m.byXpub.Size()
}

// Clear wipes and forgets all contexts. Only call it once no request can
// still be using a context, e.g. during shutdown.
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byXpub.Range(func(_ string, c *hdkey.Context) bool {
		c.Wipe()
		return true
	})
	m.byXpub.Clear()
	m.active = nil
}

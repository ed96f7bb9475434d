package keyring

import "github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"

// Manager holds the key contexts known to the process
type Manager interface {
	// Activate registers ctx and makes it the active context
	Activate(ctx *hdkey.Context)

	// Register makes ctx addressable by its xpub without activating it
	Register(ctx *hdkey.Context)

	// Active returns the active context
	Active() (*hdkey.Context, error)

	// Resolve returns the context registered for xpub, or the active one if xpub is empty
	Resolve(xpub string) (*hdkey.Context, error)

	// IsInitialized checks if an active context exists
	IsInitialized() bool

	// Len returns the number of registered contexts
	Len() int

	// Clear wipes and forgets all contexts
	Clear()
}

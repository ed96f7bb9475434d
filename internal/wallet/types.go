package wallet

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Service manages the key contexts requests sign with
type Service interface {
	// InitWithEntropy builds a key context from raw entropy and activates it
	InitWithEntropy(ctx context.Context, req *InitWithEntropyRequest) (string, error)

	// DeriveXpubFromMnemonic derives the xpub of a mnemonic, optionally activating its context
	DeriveXpubFromMnemonic(ctx context.Context, req *DeriveXpubRequest) (string, error)

	// GetPublicKey derives the public key at index
	GetPublicKey(ctx context.Context, xpub string, index int64) (*secp256k1.PublicKey, error)
}

// InitWithEntropyRequest represents a request to establish a master key
type InitWithEntropyRequest struct {
	Entropy string // 16-64 bytes, hex
	Network string // Network tag, empty for the configured default
}

// DeriveXpubRequest represents a request to derive an xpub from a mnemonic
type DeriveXpubRequest struct {
	Mnemonic   string
	Passphrase string // Optional BIP39 passphrase
	Network    string // Network tag, empty for the configured default
	Activate   bool   // Make the derived context the active one
}

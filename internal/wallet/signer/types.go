package signer

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
)

// Service provides ECDSA signing with derived keys
type Service interface {
	// SignHash signs a 32-byte digest with the key at req.Index
	SignHash(ctx context.Context, req *SignHashRequest) (*SignHashResponse, error)
}

// SignHashRequest represents a request to sign a digest
type SignHashRequest struct {
	Xpub         string               // Key context handle, empty for the active context
	Index        uint32               // Child index under the context's base node
	Hash         [secp.HashSize]byte  // Digest to sign, never hashed again
	SignerPubkey *secp256k1.PublicKey // Public key the caller expects at Index
}

// SignHashResponse represents a low-S ECDSA signature
type SignHashResponse struct {
	Signature *ecdsa.Signature
	DER       []byte // DER encoding
	Compact   []byte // 64-byte r||s
}

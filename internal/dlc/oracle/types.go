package oracle

import "context"

// Service derives oracle nonces from the key ring
type Service interface {
	// CreateDeterministicNonce derives the nonce for an event digit
	CreateDeterministicNonce(ctx context.Context, req *NonceRequest) (*Nonce, error)
}

// NonceRequest represents a request for one announcement nonce
type NonceRequest struct {
	Xpub    string // Key context handle, empty for the active context
	EventID string // Oracle event identifier, 1-255 bytes of printable UTF-8
	Index   uint32 // Digit position within the event
}

package cet

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/dlc/adaptor"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
)

// Service builds and checks CET adaptor signatures
type Service interface {
	// CreateAdaptorSigs signs every CET of req, encrypted under the adaptor
	// point of its outcome pattern. All or nothing.
	CreateAdaptorSigs(ctx context.Context, req *Request) (*Result, error)

	// VerifyAdaptorSig checks a counterparty's adaptor signature for one CET
	VerifyAdaptorSig(ctx context.Context, req *VerifyRequest) (bool, error)
}

// Request carries the wire encodings of a CET batch. Lists are comma separated.
type Request struct {
	Xpub                string // Key context handle, empty for the active context
	NumDigits           int
	NumCets             int
	Base                int    // Outcome radix, 0 for the configured default
	DigitStringTemplate string // NumDigits characters, digits or '?'
	OraclePubkey        string // x-only or compressed hex
	SigningKeyIndex     int64
	SigningPubkey       string // compressed hex
	Nonces              string // NumDigits x-only or compressed points
	IntervalWildcards   string // NumCets patterns of NumDigits characters
	Sighashes           string // NumCets 32-byte digests
}

// VerifyRequest carries one adaptor signature to check.
type VerifyRequest struct {
	AdaptorSig    string // 162-byte hex
	SigningPubkey string
	Sighash       string
	OraclePubkey  string
	Nonces        string
	Outcome       string // pattern with one character per nonce
	Base          int
}

// Batch is a decoded and validated Request.
type Batch struct {
	NumDigits       int
	Base            int
	Oracle          *secp256k1.PublicKey
	Nonces          []*secp256k1.PublicKey
	SigningKeyIndex uint32
	SigningPubkey   *secp256k1.PublicKey
	Template        outcome.Pattern
	Patterns        []outcome.Pattern // already constrained by Template
	Sighashes       [][secp.HashSize]byte
}

// Result holds one adaptor signature per CET, in sighash order.
type Result struct {
	Signatures []*adaptor.Signature
}

// Limits bounds the work a single request may ask for.
type Limits struct {
	MaxDigits   int
	MaxCets     int
	Workers     int
	DefaultBase int
}

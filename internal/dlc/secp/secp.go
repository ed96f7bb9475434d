// Package secp holds the secp256k1 encodings and point helpers shared by the
// signer, oracle and adaptor packages.
//
// Wire encodings:
//   - points: 33-byte compressed SEC1, hex
//   - x-only points: 32-byte BIP340 x coordinate, hex (lifted to even Y)
//   - scalars: 32-byte big-endian, hex
//   - hashes: 32 bytes, hex
package secp

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

const (
	HashSize        = 32
	ScalarSize      = 32
	XOnlySize       = schnorr.PubKeyBytesLen
	CompressedSize  = secp256k1.PubKeyBytesLenCompressed
	listSeparator   = ","
	hexPrefix       = "0x"
	hexPrefixUpper  = "0X"
	maxEncodedInput = 1 << 20
)

// DecodeHex decodes s as hex, tolerating a 0x prefix and surrounding spaces.
func DecodeHex(field string, s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, hexPrefix), hexPrefixUpper)
	if len(s) > maxEncodedInput {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "input too large")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, dlcerr.Wrap(dlcerr.KindInvalidInputEncoding, field, err)
	}
	return b, nil
}

// SplitList splits a comma separated list, trimming entries. An empty string
// yields an empty list.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseHash decodes a 32-byte digest.
func ParseHash(field string, s string) ([HashSize]byte, error) {
	var h [HashSize]byte
	b, err := DecodeHex(field, s)
	if err != nil {
		return h, err
	}
	if len(b) != HashSize {
		return h, dlcerr.New(dlcerr.KindInvalidHashLength, field, "need %d bytes, got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// ParsePoint parses a compressed or uncompressed SEC1 point.
func ParsePoint(field string, b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, dlcerr.Wrap(dlcerr.KindInvalidPoint, field, err)
	}
	return pub, nil
}

// ParsePointHex decodes and parses a hex SEC1 point.
func ParsePointHex(field string, s string) (*secp256k1.PublicKey, error) {
	b, err := DecodeHex(field, s)
	if err != nil {
		return nil, err
	}
	return ParsePoint(field, b)
}

// ParseXOnly parses a BIP340 point. 32-byte input is an x coordinate; 33-byte
// compressed input contributes only its x coordinate. Either way the point
// returned has even Y. kind selects the error reported on failure.
func ParseXOnly(kind dlcerr.Kind, field string, b []byte) (*secp256k1.PublicKey, error) {
	switch len(b) {
	case XOnlySize:
	case CompressedSize:
		if b[0] != secp256k1.PubKeyFormatCompressedEven && b[0] != secp256k1.PubKeyFormatCompressedOdd {
			return nil, dlcerr.New(kind, field, "unknown point prefix 0x%02x", b[0])
		}
		b = b[1:]
	default:
		return nil, dlcerr.New(kind, field, "need %d or %d bytes, got %d", XOnlySize, CompressedSize, len(b))
	}
	pub, err := schnorr.ParsePubKey(b)
	if err != nil {
		return nil, dlcerr.Wrap(kind, field, err)
	}
	return pub, nil
}

// ParseXOnlyHex decodes and parses a hex BIP340 point. Malformed hex is
// reported with kind as well.
func ParseXOnlyHex(kind dlcerr.Kind, field string, s string) (*secp256k1.PublicKey, error) {
	b, err := DecodeHex(field, s)
	if err != nil {
		if e, ok := dlcerr.As(err); ok {
			e.Kind = kind
		}
		return nil, err
	}
	return ParseXOnly(kind, field, b)
}

// ParseScalar parses a 32-byte big-endian scalar that must be in [1, n).
func ParseScalar(field string, b []byte) (secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	if len(b) != ScalarSize {
		return s, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "need %d bytes, got %d", ScalarSize, len(b))
	}
	if overflow := s.SetByteSlice(b); overflow {
		return s, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "scalar not below curve order")
	}
	if s.IsZero() {
		return s, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "scalar is zero")
	}
	return s, nil
}

// TaggedHash is the BIP340 tagged hash SHA256(SHA256(tag)||SHA256(tag)||msgs...).
func TaggedHash(tag []byte, msgs ...[]byte) [HashSize]byte {
	return *chainhash.TaggedHash(tag, msgs...)
}

// HashToScalar reduces a 32-byte digest modulo the curve order.
func HashToScalar(h [HashSize]byte) secp256k1.ModNScalar {
	var s secp256k1.ModNScalar
	s.SetBytes(&h)
	return s
}

// EncodeScalar returns the 32-byte big-endian hex form of s.
func EncodeScalar(s *secp256k1.ModNScalar) string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// EncodePoint returns the compressed hex form of p.
func EncodePoint(p *secp256k1.PublicKey) string {
	return hex.EncodeToString(p.SerializeCompressed())
}

// IsInfinity reports whether p is the point at infinity.
func IsInfinity(p *secp256k1.JacobianPoint) bool {
	return p.Z.IsZero() || (p.X.IsZero() && p.Y.IsZero())
}

// Add returns a + b in Jacobian coordinates.
func Add(a, b *secp256k1.JacobianPoint) secp256k1.JacobianPoint {
	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(a, b, &sum)
	return sum
}

// Mul returns k·p.
func Mul(k *secp256k1.ModNScalar, p *secp256k1.JacobianPoint) secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, p, &out)
	return out
}

// MulBase returns k·G.
func MulBase(k *secp256k1.ModNScalar) secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &out)
	return out
}

// Jacobian returns p in Jacobian coordinates.
func Jacobian(p *secp256k1.PublicKey) secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	p.AsJacobian(&j)
	return j
}

// ErrInfinity is returned by ToPublicKey for the identity element.
var ErrInfinity = errors.New("point at infinity")

// ToPublicKey converts p to affine coordinates. p is modified.
func ToPublicKey(p *secp256k1.JacobianPoint) (*secp256k1.PublicKey, error) {
	if IsInfinity(p) {
		return nil, ErrInfinity
	}
	p.ToAffine()
	return secp256k1.NewPublicKey(&p.X, &p.Y), nil
}

// Equal reports whether a and b are the same point.
func Equal(a, b *secp256k1.JacobianPoint) bool {
	aInf, bInf := IsInfinity(a), IsInfinity(b)
	if aInf || bInf {
		return aInf == bInf
	}
	ac, bc := *a, *b
	ac.ToAffine()
	bc.ToAffine()
	return ac.X.Equals(&bc.X) && ac.Y.Equals(&bc.Y)
}

// XScalar returns the affine x coordinate of p reduced modulo n, as ECDSA
// uses for r. p must not be infinity.
func XScalar(p *secp256k1.JacobianPoint) secp256k1.ModNScalar {
	a := *p
	a.ToAffine()
	xb := a.X.Bytes()
	var r secp256k1.ModNScalar
	r.SetBytes(xb)
	return r
}

// EvenY reports whether the affine Y coordinate of p is even.
func EvenY(p *secp256k1.JacobianPoint) bool {
	a := *p
	a.ToAffine()
	return !a.Y.IsOdd()
}

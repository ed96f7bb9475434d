package oracle

import (
	"crypto/sha256"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

var challengeTag = []byte("BIP0340/challenge")

// DigitMessage is the message an oracle signs to attest digit d.
func DigitMessage(d int) [secp.HashSize]byte {
	return sha256.Sum256([]byte(strconv.Itoa(d)))
}

func xOnly(p *secp256k1.PublicKey) []byte {
	return schnorr.SerializePubKey(p)
}

// Challenge is the BIP340 challenge e = H(R.x || P.x || m) mod n.
func Challenge(oracle, nonce *secp256k1.PublicKey, msg [secp.HashSize]byte) secp256k1.ModNScalar {
	return secp.HashToScalar(secp.TaggedHash(challengeTag, xOnly(nonce), xOnly(oracle), msg[:]))
}

// liftEven returns p with its Y coordinate made even, as BIP340 interprets
// an x-only key.
func liftEven(p *secp256k1.PublicKey) secp256k1.JacobianPoint {
	j := secp.Jacobian(p)
	j.ToAffine()
	if j.Y.IsOdd() {
		j.Y.Negate(1).Normalize()
	}
	return j
}

// AttestationPoint is s·G for the signature the oracle will publish if it
// attests digit d with nonce: R + e·P.
func AttestationPoint(oracle, nonce *secp256k1.PublicKey, d int) secp256k1.JacobianPoint {
	e := Challenge(oracle, nonce, DigitMessage(d))
	p := liftEven(oracle)
	r := liftEven(nonce)
	ep := secp.Mul(&e, &p)
	return secp.Add(&r, &ep)
}

// AttestDigit produces the BIP340 signature scalar s = k + e·x an oracle
// publishes for digit d. Keys with odd Y are negated first so that the
// signature verifies against the x-only forms.
func AttestDigit(oracleKey *secp256k1.PrivateKey, nonce *secp256k1.ModNScalar, d int) secp256k1.ModNScalar {
	x := oracleKey.Key
	pub := oracleKey.PubKey()
	if pub.SerializeCompressed()[0] == secp256k1.PubKeyFormatCompressedOdd {
		x.Negate()
	}

	k := *nonce
	r := secp.MulBase(&k)
	if !secp.EvenY(&r) {
		k.Negate()
	}
	noncePub, _ := secp.ToPublicKey(&r)

	e := Challenge(pub, noncePub, DigitMessage(d))
	var s secp256k1.ModNScalar
	s.Mul2(&e, &x).Add(&k)

	x.Zero()
	k.Zero()
	return s
}

// AttestationSignature is the 64-byte BIP340 signature R.x || s for digit d.
func AttestationSignature(oracleKey *secp256k1.PrivateKey, nonce *secp256k1.ModNScalar, d int) []byte {
	r := secp.MulBase(nonce)
	noncePub, _ := secp.ToPublicKey(&r)
	s := AttestDigit(oracleKey, nonce, d)

	sb := s.Bytes()
	return append(xOnly(noncePub), sb[:]...)
}

// AdaptorSecret is the discrete log of the adaptor point of pattern, given
// the attestation scalars the oracle published for every position.
func AdaptorSecret(attestations []secp256k1.ModNScalar, pattern outcome.Pattern) (secp256k1.ModNScalar, error) {
	var sum secp256k1.ModNScalar
	if len(attestations) != len(pattern) {
		return sum, dlcerr.Count(dlcerr.KindDigitCountMismatch, "attestations", len(pattern), len(attestations))
	}

	for i, d := range pattern {
		if d == outcome.Wildcard {
			continue
		}
		sum.Add(&attestations[i])
	}

	if sum.IsZero() {
		return sum, dlcerr.New(dlcerr.KindDegenerateAdaptorPoint, "pattern", "adaptor secret is zero")
	}
	return sum, nil
}

// Table caches attestation points per digit position and digit value, so a
// batch of patterns over the same announcement costs one scalar
// multiplication per (position, digit) instead of one per pattern entry.
type Table struct {
	base   int
	points [][]secp256k1.JacobianPoint
}

// NewTable precomputes every attestation point of an announcement with one
// nonce per digit position.
func NewTable(oracle *secp256k1.PublicKey, nonces []*secp256k1.PublicKey, base int) (*Table, error) {
	if err := outcome.CheckBase("base", base); err != nil {
		return nil, err
	}

	points := make([][]secp256k1.JacobianPoint, len(nonces))
	for i, nonce := range nonces {
		points[i] = make([]secp256k1.JacobianPoint, base)
		for d := 0; d < base; d++ {
			points[i][d] = AttestationPoint(oracle, nonce, d)
		}
	}

	return &Table{base: base, points: points}, nil
}

// Positions returns the number of digit positions.
func (t *Table) Positions() int {
	return len(t.points)
}

// AdaptorPoint sums the attestation points of the fixed positions of pattern.
func (t *Table) AdaptorPoint(pattern outcome.Pattern) (*secp256k1.PublicKey, error) {
	if len(pattern) != len(t.points) {
		return nil, dlcerr.Count(dlcerr.KindDigitCountMismatch, "pattern", len(t.points), len(pattern))
	}

	var sum secp256k1.JacobianPoint
	for i, d := range pattern {
		if d == outcome.Wildcard {
			continue
		}
		if d < 0 || d >= t.base {
			return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "pattern", "digit %d at position %d out of range", d, i)
		}
		sum = secp.Add(&sum, &t.points[i][d])
	}

	pub, err := secp.ToPublicKey(&sum)
	if err != nil {
		return nil, dlcerr.New(dlcerr.KindDegenerateAdaptorPoint, "pattern", "adaptor point for %s is the identity", pattern)
	}
	return pub, nil
}

// AdaptorPoint computes the adaptor point of one pattern without a table.
func AdaptorPoint(oracle *secp256k1.PublicKey, nonces []*secp256k1.PublicKey, pattern outcome.Pattern, base int) (*secp256k1.PublicKey, error) {
	if len(nonces) != len(pattern) {
		return nil, dlcerr.Count(dlcerr.KindNonceCountMismatch, "nonces", len(pattern), len(nonces))
	}

	if err := outcome.CheckBase("base", base); err != nil {
		return nil, err
	}

	// only the digits the pattern fixes are needed
	t := &Table{base: base, points: make([][]secp256k1.JacobianPoint, len(nonces))}
	for i, d := range pattern {
		t.points[i] = make([]secp256k1.JacobianPoint, base)
		if d != outcome.Wildcard && d >= 0 && d < base {
			t.points[i][d] = AttestationPoint(oracle, nonces[i], d)
		}
	}

	return t.AdaptorPoint(pattern)
}

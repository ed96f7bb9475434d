// Package oracle derives deterministic oracle nonces and implements the
// BIP340 algebra that links oracle attestations to adaptor points.
package oracle

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

const (
	// NonceTag domain-separates nonce derivation from every other use of the key.
	NonceTag = "DLC/oracle/nonce/v1"

	MaxEventIDLength = 255
)

// Nonce is a one-time oracle nonce. Public always has even Y.
type Nonce struct {
	Secret secp256k1.ModNScalar
	Public *secp256k1.PublicKey
}

// Zero clears the secret.
func (n *Nonce) Zero() {
	n.Secret.Zero()
}

// ValidateEventID accepts non-empty UTF-8 ids of at most MaxEventIDLength
// bytes without control characters.
func ValidateEventID(eventID string) error {
	switch {
	case eventID == "":
		return dlcerr.New(dlcerr.KindInvalidEventID, "event_id", "event id is empty")
	case len(eventID) > MaxEventIDLength:
		return dlcerr.New(dlcerr.KindInvalidEventID, "event_id", "event id is %d bytes, max %d", len(eventID), MaxEventIDLength)
	case !utf8.ValidString(eventID):
		return dlcerr.New(dlcerr.KindInvalidEventID, "event_id", "event id is not valid UTF-8")
	}

	for _, r := range eventID {
		if unicode.IsControl(r) {
			return dlcerr.New(dlcerr.KindInvalidEventID, "event_id", "event id contains control character %U", r)
		}
	}

	return nil
}

// CheckIndex converts a caller supplied digit index. Unlike key indices the
// full uint32 range is valid.
func CheckIndex(index int64) (uint32, error) {
	if index < 0 || index > math.MaxUint32 {
		return 0, dlcerr.New(dlcerr.KindInvalidInputEncoding, "index", "index %d outside [0, %d]", index, uint64(math.MaxUint32))
	}
	return uint32(index), nil
}

// DeriveNonce derives the nonce for (eventID, index) from key. The same
// inputs always yield the same nonce; different inputs yield independent ones.
func DeriveNonce(key *secp256k1.PrivateKey, eventID string, index uint32) (*Nonce, error) {
	if err := ValidateEventID(eventID); err != nil {
		return nil, err
	}

	keyBytes := key.Serialize()
	defer func() {
		for i := range keyBytes {
			keyBytes[i] = 0
		}
	}()

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(eventID)))
	var indexBuf [4]byte
	binary.BigEndian.PutUint32(indexBuf[:], index)

	var k secp256k1.ModNScalar
	for counter := uint32(0); ; counter++ {
		mac := hmac.New(sha512.New, keyBytes)
		mac.Write([]byte(NonceTag))
		mac.Write(lenBuf[:])
		mac.Write([]byte(eventID))
		mac.Write(indexBuf[:])
		if counter > 0 {
			var counterBuf [4]byte
			binary.BigEndian.PutUint32(counterBuf[:], counter)
			mac.Write(counterBuf[:])
		}
		sum := mac.Sum(nil)

		overflow := k.SetByteSlice(sum[:32])
		for i := range sum {
			sum[i] = 0
		}
		if !overflow && !k.IsZero() {
			break
		}
	}

	// BIP340 nonces are x-only, so commit to the even-Y point
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &r)
	r.ToAffine()
	if r.Y.IsOdd() {
		k.Negate()
		r.Y.Negate(1).Normalize()
	}

	return &Nonce{
		Secret: k,
		Public: secp256k1.NewPublicKey(&r.X, &r.Y),
	}, nil
}

package seed

import (
	"crypto/sha512"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// MinEntropyBytes and MaxEntropyBytes bound a raw BIP32 seed.
	MinEntropyBytes = 16
	MaxEntropyBytes = 64

	// DefaultMnemonicBits is the entropy size of generated mnemonics (24 words).
	DefaultMnemonicBits = 256
)

// FromEntropy validates raw entropy and returns a copy usable as a BIP32 seed.
func FromEntropy(entropy []byte) ([]byte, error) {
	if len(entropy) < MinEntropyBytes || len(entropy) > MaxEntropyBytes {
		return nil, dlcerr.New(dlcerr.KindInvalidEntropy, "entropy",
			"need %d to %d bytes, got %d", MinEntropyBytes, MaxEntropyBytes, len(entropy))
	}

	seed := make([]byte, len(entropy))
	copy(seed, entropy)
	return seed, nil
}

// FromEntropyHex decodes hex entropy and validates it like FromEntropy.
func FromEntropyHex(entropy string) ([]byte, error) {
	b, err := secp.DecodeHex("entropy", entropy)
	if err != nil {
		return nil, dlcerr.Wrap(dlcerr.KindInvalidEntropy, "entropy", err)
	}
	defer Wipe(b)

	return FromEntropy(b)
}

// FromMnemonic converts a BIP39 mnemonic and optional passphrase to a 64-byte seed.
// The checksum and word list are verified first.
func FromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	mnemonic = NormalizeMnemonic(mnemonic)

	if _, err := bip39.EntropyFromMnemonic(mnemonic); err != nil {
		return nil, dlcerr.Wrap(dlcerr.KindInvalidMnemonic, "mnemonic", err)
	}

	// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
	const (
		pbkdf2Iterations = 2048
		pbkdf2KeyLength  = 64
	)

	return pbkdf2.Key(
		[]byte(mnemonic),
		[]byte("mnemonic"+norm.NFKD.String(passphrase)),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	), nil
}

// NormalizeMnemonic applies NFKD, lower-cases and collapses whitespace.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(norm.NFKD.String(mnemonic))), " ")
}

// NewMnemonic generates a fresh English mnemonic with the given entropy size.
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	defer Wipe(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}

	return mnemonic, nil
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

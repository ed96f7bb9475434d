// Package hdkey turns a seed into an immutable BIP32 key context and derives
// child keys from it.
package hdkey

import (
	"bytes"
	"math"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

// MaxIndex is the largest non-hardened child index.
const MaxIndex = bip32.FirstHardenedChild - 1

// Context is a derivation root: the node at BasePath under the master key of
// one seed. It is never mutated after NewContext returns, so it can be shared
// between goroutines without locking.
type Context struct {
	network  *chaincfg.Params
	basePath string
	base     *bip32.Key
	xpub     string
}

// NewContext builds a context from a BIP32 seed. basePath defaults to
// DefaultBasePath when empty.
func NewContext(seed []byte, network *chaincfg.Params, basePath string) (*Context, error) {
	if network == nil {
		return nil, dlcerr.New(dlcerr.KindInvalidNetwork, "network", "network is required")
	}
	if basePath == "" {
		basePath = DefaultBasePath
	}

	indices, err := ParsePath(basePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base path")
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, dlcerr.Wrap(dlcerr.KindInvalidEntropy, "entropy", err)
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, dlcerr.Wrap(dlcerr.KindInternalCurveError, "base_path", errors.Wrapf(err, "failed to derive child key at index %d", index))
		}
	}

	pub := key.PublicKey()
	pub.Version = append([]byte(nil), network.HDPublicKeyID[:]...)

	return &Context{
		network:  network,
		basePath: basePath,
		base:     key,
		xpub:     pub.B58Serialize(),
	}, nil
}

// Xpub returns the serialised extended public key of the base node.
func (c *Context) Xpub() string {
	return c.xpub
}

// Network returns the chain parameters the context serialises for.
func (c *Context) Network() *chaincfg.Params {
	return c.network
}

// BasePath returns the derivation path of the base node.
func (c *Context) BasePath() string {
	return c.basePath
}

// CheckIndex converts a caller supplied index into a child index.
func CheckIndex(index int64) (uint32, error) {
	if index < 0 {
		return 0, dlcerr.New(dlcerr.KindInvalidInputEncoding, "index", "index must be non-negative")
	}
	if index > math.MaxUint32 || uint32(index) > MaxIndex {
		return 0, dlcerr.New(dlcerr.KindDerivationOverflow, "index", "index %d exceeds %d", index, MaxIndex)
	}
	return uint32(index), nil
}

// PrivateKey derives the private key at child index under the base node.
func (c *Context) PrivateKey(index uint32) (*secp256k1.PrivateKey, error) {
	if index > MaxIndex {
		return nil, dlcerr.New(dlcerr.KindDerivationOverflow, "index", "index %d exceeds %d", index, MaxIndex)
	}

	child, err := c.base.NewChildKey(index)
	if err != nil {
		// BIP32 says to skip to the next index; callers pick indices, so surface it.
		return nil, dlcerr.Wrap(dlcerr.KindInternalCurveError, "index", errors.Wrapf(err, "failed to derive child key at index %d", index))
	}

	return secp256k1.PrivKeyFromBytes(child.Key), nil
}

// PublicKey derives the public key at child index under the base node.
func (c *Context) PublicKey(index uint32) (*secp256k1.PublicKey, error) {
	priv, err := c.PrivateKey(index)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return priv.PubKey(), nil
}

// SigningKey derives the private key at index and checks that its public key
// is expected. A mismatch usually means the caller holds a stale index.
// WARNING: Caller must Zero the returned key after use
func (c *Context) SigningKey(index uint32, expected *secp256k1.PublicKey) (*secp256k1.PrivateKey, error) {
	priv, err := c.PrivateKey(index)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(priv.PubKey().SerializeCompressed(), expected.SerializeCompressed()) {
		priv.Zero()
		return nil, dlcerr.New(dlcerr.KindSignerMismatch, "signer_pubkey", "key at index %d does not match", index)
	}

	return priv, nil
}

// BaseKey returns a copy of the base node's private key. It keys derivations
// that are not BIP32 children, such as oracle nonces.
// WARNING: Caller must Zero the returned key after use
func (c *Context) BaseKey() *secp256k1.PrivateKey {
	return secp256k1.PrivKeyFromBytes(c.base.Key)
}

// Wipe zeroes the base private key. The context is unusable afterwards.
func (c *Context) Wipe() {
	for i := range c.base.Key {
		c.base.Key[i] = 0
	}
}

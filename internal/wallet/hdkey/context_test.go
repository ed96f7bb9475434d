package hdkey_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
)

// BIP32 test vector 1
var vector1Seed, _ = hex.DecodeString("000102030405060708090a0b0c0d0e0f")

func TestNewContextBIP32Vector1(t *testing.T) {
	ctx, err := hdkey.NewContext(vector1Seed, &chaincfg.MainNetParams, "")
	require.NoError(t, err)
	assert.Equal(t, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8", ctx.Xpub())
	assert.Equal(t, hdkey.DefaultBasePath, ctx.BasePath())

	hardened, err := hdkey.NewContext(vector1Seed, &chaincfg.MainNetParams, "m/0'")
	require.NoError(t, err)
	assert.Equal(t, "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw", hardened.Xpub())

	pub, err := hardened.PublicKey(1)
	require.NoError(t, err)
	assert.Equal(t, "03501e454bf00751f24b1b489aa925215d66af2234e3891c3b21a52bedb3cd711c", hex.EncodeToString(pub.SerializeCompressed()))
}

func TestNewContextTestnetPrefix(t *testing.T) {
	params, err := hdkey.ParseNetwork("testnet")
	require.NoError(t, err)

	ctx, err := hdkey.NewContext(vector1Seed, params, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctx.Xpub(), "tpub"), ctx.Xpub())

	again, err := hdkey.NewContext(vector1Seed, params, "")
	require.NoError(t, err)
	assert.Equal(t, ctx.Xpub(), again.Xpub())
}

func TestParseNetwork(t *testing.T) {
	for _, name := range []string{"mainnet", "Bitcoin", "testnet", "testnet3", "signet", "regtest"} {
		_, err := hdkey.ParseNetwork(name)
		assert.NoError(t, err, name)
	}

	_, err := hdkey.ParseNetwork("dogecoin")
	require.ErrorIs(t, err, dlcerr.ErrInvalidNetwork)
}

func TestDerivationIsDeterministic(t *testing.T) {
	ctx, err := hdkey.NewContext(vector1Seed, &chaincfg.RegressionNetParams, "m/84'/1'/0'")
	require.NoError(t, err)

	for _, index := range []uint32{0, 1, 42, hdkey.MaxIndex} {
		a, err := ctx.PublicKey(index)
		require.NoError(t, err)
		b, err := ctx.PublicKey(index)
		require.NoError(t, err)
		assert.True(t, a.IsEqual(b))

		priv, err := ctx.PrivateKey(index)
		require.NoError(t, err)
		assert.True(t, priv.PubKey().IsEqual(a))
	}
}

func TestDerivationOverflow(t *testing.T) {
	ctx, err := hdkey.NewContext(vector1Seed, &chaincfg.MainNetParams, "")
	require.NoError(t, err)

	_, err = ctx.PublicKey(hdkey.MaxIndex + 1)
	require.ErrorIs(t, err, dlcerr.ErrDerivationOverflow)

	_, err = hdkey.CheckIndex(int64(hdkey.MaxIndex) + 1)
	require.ErrorIs(t, err, dlcerr.ErrDerivationOverflow)

	_, err = hdkey.CheckIndex(1 << 40)
	require.ErrorIs(t, err, dlcerr.ErrDerivationOverflow)

	_, err = hdkey.CheckIndex(-1)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	index, err := hdkey.CheckIndex(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), index)
}

func TestSigningKeyMismatch(t *testing.T) {
	ctx, err := hdkey.NewContext(vector1Seed, &chaincfg.MainNetParams, "")
	require.NoError(t, err)

	pub0, err := ctx.PublicKey(0)
	require.NoError(t, err)

	priv, err := ctx.SigningKey(0, pub0)
	require.NoError(t, err)
	priv.Zero()

	_, err = ctx.SigningKey(1, pub0)
	require.ErrorIs(t, err, dlcerr.ErrSignerMismatch)
}

func TestParsePath(t *testing.T) {
	indices, err := hdkey.ParsePath("m/44'/60h/0'/0/5")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x8000002c, 0x8000003c, 0x80000000, 0, 5}, indices)

	indices, err = hdkey.ParsePath("m")
	require.NoError(t, err)
	assert.Empty(t, indices)

	for _, bad := range []string{"", "44'/0'", "m/x", "m//1", "m/2147483648"} {
		_, err := hdkey.ParsePath(bad)
		assert.Error(t, err, bad)
	}
}

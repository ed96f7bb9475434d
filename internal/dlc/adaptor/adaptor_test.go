package adaptor_test

import (
	"crypto/sha256"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlc/adaptor"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"lukechampine.com/frand"
)

type fixture struct {
	signer  *secp256k1.PrivateKey
	hash    [32]byte
	y       *secp256k1.PrivateKey
	encKey  *secp256k1.PublicKey
	adaptor *adaptor.Signature
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	signer, err := secp256k1.GeneratePrivateKeyFromRand(frand.Reader)
	require.NoError(t, err)
	y, err := secp256k1.GeneratePrivateKeyFromRand(frand.Reader)
	require.NoError(t, err)

	f := &fixture{
		signer: signer,
		hash:   sha256.Sum256(frand.Bytes(16)),
		y:      y,
		encKey: y.PubKey(),
	}

	f.adaptor, err = adaptor.Encrypt(signer, f.hash, f.encKey)
	require.NoError(t, err)
	return f
}

func TestEncryptVerify(t *testing.T) {
	f := newFixture(t)

	require.True(t, adaptor.Verify(f.adaptor, f.signer.PubKey(), f.hash, f.encKey), spew.Sdump(f.adaptor))

	other := sha256.Sum256([]byte("other"))
	assert.False(t, adaptor.Verify(f.adaptor, f.signer.PubKey(), other, f.encKey))

	stranger, err := secp256k1.GeneratePrivateKeyFromRand(frand.Reader)
	require.NoError(t, err)
	assert.False(t, adaptor.Verify(f.adaptor, stranger.PubKey(), f.hash, f.encKey))
	assert.False(t, adaptor.Verify(f.adaptor, f.signer.PubKey(), f.hash, stranger.PubKey()))
}

func TestEncryptDeterministic(t *testing.T) {
	f := newFixture(t)

	again, err := adaptor.Encrypt(f.signer, f.hash, f.encKey)
	require.NoError(t, err)
	assert.Equal(t, f.adaptor.Serialize(), again.Serialize())
}

func TestVerifyRejectsForgedProof(t *testing.T) {
	f := newFixture(t)

	// swap R for another point: the DLEQ proof no longer binds it to R'
	forged := *f.adaptor
	forged.R = f.signer.PubKey()
	assert.False(t, adaptor.Verify(&forged, f.signer.PubKey(), f.hash, f.encKey))

	forged = *f.adaptor
	forged.Proof.Z.Add(&f.adaptor.Proof.E)
	assert.False(t, adaptor.Verify(&forged, f.signer.PubKey(), f.hash, f.encKey))
}

func TestDecryptAndRecover(t *testing.T) {
	f := newFixture(t)

	sig, err := adaptor.Decrypt(f.adaptor, &f.y.Key)
	require.NoError(t, err)

	s := sig.S()
	assert.False(t, s.IsOverHalfOrder())
	assert.True(t, sig.Verify(f.hash[:], f.signer.PubKey()))

	recovered, err := adaptor.Recover(f.adaptor, sig, f.encKey)
	require.NoError(t, err)
	assert.True(t, recovered.Equals(&f.y.Key))
}

func TestDecryptWithWrongKey(t *testing.T) {
	f := newFixture(t)

	wrong, err := secp256k1.GeneratePrivateKeyFromRand(frand.Reader)
	require.NoError(t, err)

	sig, err := adaptor.Decrypt(f.adaptor, &wrong.Key)
	require.NoError(t, err)
	assert.False(t, sig.Verify(f.hash[:], f.signer.PubKey()))

	var zero secp256k1.ModNScalar
	_, err = adaptor.Decrypt(f.adaptor, &zero)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}

func TestSerializeParse(t *testing.T) {
	f := newFixture(t)

	raw := f.adaptor.Serialize()
	require.Len(t, raw, adaptor.Size)

	parsed, err := adaptor.Parse("adaptor_sig", raw)
	require.NoError(t, err)
	assert.Equal(t, raw, parsed.Serialize())
	assert.True(t, adaptor.Verify(parsed, f.signer.PubKey(), f.hash, f.encKey))

	_, err = adaptor.Parse("adaptor_sig", raw[:adaptor.Size-1])
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)

	bad := append([]byte(nil), raw...)
	bad[0] = 0x05
	_, err = adaptor.Parse("adaptor_sig", bad)
	require.ErrorIs(t, err, dlcerr.ErrInvalidPoint)

	bad = append([]byte(nil), raw...)
	for i := 66; i < 98; i++ {
		bad[i] = 0xff
	}
	_, err = adaptor.Parse("adaptor_sig", bad)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}

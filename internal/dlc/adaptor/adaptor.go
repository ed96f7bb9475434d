// Package adaptor implements ECDSA adaptor signatures on secp256k1.
//
// An adaptor signature under the encryption key Y = y·G verifies as a
// promise that knowing y turns it into a valid ECDSA signature, and that
// seeing that ECDSA signature reveals y. Serialised form (162 bytes):
//
//	R (33) || R' (33) || s' (32) || dleq_e (32) || dleq_z (32)
//
// with R' = k·G, R = k·Y, r = x(R) mod n and s' = k⁻¹(m + r·x).
package adaptor

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

// Size is the length of a serialised adaptor signature.
const Size = 2*secp.CompressedSize + 3*secp.ScalarSize

var nonceTag = []byte("DLC/ECDSAadaptor/nonce")

type Signature struct {
	R      *secp256k1.PublicKey // k·Y
	RPrime *secp256k1.PublicKey // k·G
	SPrime secp256k1.ModNScalar
	Proof  Proof
}

// Serialize returns the 162-byte encoding.
func (s *Signature) Serialize() []byte {
	out := make([]byte, 0, Size)
	out = append(out, s.R.SerializeCompressed()...)
	out = append(out, s.RPrime.SerializeCompressed()...)
	sp, e, z := s.SPrime.Bytes(), s.Proof.E.Bytes(), s.Proof.Z.Bytes()
	out = append(out, sp[:]...)
	out = append(out, e[:]...)
	return append(out, z[:]...)
}

// Parse decodes the 162-byte encoding. Points must be valid compressed
// points and scalars must be below the curve order.
func Parse(field string, b []byte) (*Signature, error) {
	if len(b) != Size {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "adaptor signature must be %d bytes, got %d", Size, len(b))
	}

	off := 0
	next := func(n int) []byte {
		chunk := b[off : off+n]
		off += n
		return chunk
	}

	r, err := secp.ParsePoint(field, next(secp.CompressedSize))
	if err != nil {
		return nil, err
	}
	rPrime, err := secp.ParsePoint(field, next(secp.CompressedSize))
	if err != nil {
		return nil, err
	}

	sPrime, err := secp.ParseScalar(field, next(secp.ScalarSize))
	if err != nil {
		return nil, err
	}

	sig := &Signature{R: r, RPrime: rPrime, SPrime: sPrime}
	for _, dst := range []*secp256k1.ModNScalar{&sig.Proof.E, &sig.Proof.Z} {
		if overflow := dst.SetByteSlice(next(secp.ScalarSize)); overflow {
			return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "proof scalar not below curve order")
		}
	}

	return sig, nil
}

func hashScalar(hash [secp.HashSize]byte) secp256k1.ModNScalar {
	var m secp256k1.ModNScalar
	// ECDSA signs the hash reduced modulo n
	m.SetByteSlice(hash[:])
	return m
}

// Encrypt creates an adaptor signature of hash by key, encrypted under encKey.
// The nonce is RFC6979 over (key, hash) with encKey bound in as extra data, so
// the same inputs always produce the same signature.
func Encrypt(key *secp256k1.PrivateKey, hash [secp.HashSize]byte, encKey *secp256k1.PublicKey) (*Signature, error) {
	x := key.Key
	defer x.Zero()
	xb := x.Bytes()
	defer func() {
		for i := range xb {
			xb[i] = 0
		}
	}()

	extra := sha256.Sum256(append(append([]byte(nil), nonceTag...), encKey.SerializeCompressed()...))
	y := secp.Jacobian(encKey)
	m := hashScalar(hash)

	for iter := uint32(0); iter < maxNonceIterations; iter++ {
		k := secp256k1.NonceRFC6979(xb[:], hash[:], extra[:], nil, iter)
		if k.IsZero() {
			continue
		}

		rPrime := secp.MulBase(k)
		r := secp.Mul(k, &y)
		if secp.IsInfinity(&r) {
			k.Zero()
			continue
		}

		rx := secp.XScalar(&r)
		if rx.IsZero() {
			k.Zero()
			continue
		}

		// s' = k⁻¹(m + r·x)
		var kInv, sPrime secp256k1.ModNScalar
		kInv.InverseValNonConst(k)
		sPrime.Mul2(&rx, &x).Add(&m).Mul(&kInv)
		if sPrime.IsZero() {
			k.Zero()
			continue
		}

		proof := proveDLEQ(k, &y, &rPrime, &r)
		k.Zero()

		rPub, err := secp.ToPublicKey(&r)
		if err != nil {
			return nil, dlcerr.Wrap(dlcerr.KindInternalCurveError, "", err)
		}
		rPrimePub, err := secp.ToPublicKey(&rPrime)
		if err != nil {
			return nil, dlcerr.Wrap(dlcerr.KindInternalCurveError, "", err)
		}

		return &Signature{R: rPub, RPrime: rPrimePub, SPrime: sPrime, Proof: proof}, nil
	}

	return nil, dlcerr.Wrap(dlcerr.KindInternalCurveError, "", errors.New("no usable nonce"))
}

// maxNonceIterations bounds the nonce retry loop; each retry has negligible
// probability so reaching it means the inputs are broken.
const maxNonceIterations = 64

// Verify checks sig against the signer's public key, hash and encKey.
func Verify(sig *Signature, pub *secp256k1.PublicKey, hash [secp.HashSize]byte, encKey *secp256k1.PublicKey) bool {
	y := secp.Jacobian(encKey)
	r := secp.Jacobian(sig.R)
	rPrime := secp.Jacobian(sig.RPrime)

	if !verifyDLEQ(&sig.Proof, &y, &rPrime, &r) {
		return false
	}

	rx := secp.XScalar(&r)
	if rx.IsZero() || sig.SPrime.IsZero() {
		return false
	}

	// s'⁻¹(m·G + r·X) == R'
	m := hashScalar(hash)
	var sInv, u1, u2 secp256k1.ModNScalar
	sInv.InverseValNonConst(&sig.SPrime)
	u1.Mul2(&m, &sInv)
	u2.Mul2(&rx, &sInv)

	pubJ := secp.Jacobian(pub)
	u1G := secp.MulBase(&u1)
	u2X := secp.Mul(&u2, &pubJ)
	sum := secp.Add(&u1G, &u2X)

	return secp.Equal(&sum, &rPrime)
}

// Decrypt completes sig with the decryption key y into a low-S ECDSA signature.
func Decrypt(sig *Signature, y *secp256k1.ModNScalar) (*ecdsa.Signature, error) {
	if y.IsZero() {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "adaptor_secret", "decryption key is zero")
	}

	var yInv, s secp256k1.ModNScalar
	yInv.InverseValNonConst(y)
	s.Mul2(&sig.SPrime, &yInv)
	if s.IsOverHalfOrder() {
		s.Negate()
	}

	r := secp.Jacobian(sig.R)
	rx := secp.XScalar(&r)

	return ecdsa.NewSignature(&rx, &s), nil
}

// Recover extracts the decryption key from sig and the completed signature
// final, checking it against encKey.
func Recover(sig *Signature, final *ecdsa.Signature, encKey *secp256k1.PublicKey) (secp256k1.ModNScalar, error) {
	var y secp256k1.ModNScalar

	r := secp.Jacobian(sig.R)
	rx := secp.XScalar(&r)
	finalR, finalS := final.R(), final.S()
	if !finalR.Equals(&rx) || finalS.IsZero() {
		return y, dlcerr.New(dlcerr.KindInvalidInputEncoding, "signature", "signature does not complete this adaptor signature")
	}

	// y = s'/s, up to the sign flip of low-S normalisation
	var sInv secp256k1.ModNScalar
	sInv.InverseValNonConst(&finalS)
	y.Mul2(&sig.SPrime, &sInv)

	want := secp.Jacobian(encKey)
	for i := 0; i < 2; i++ {
		got := secp.MulBase(&y)
		if secp.Equal(&got, &want) {
			return y, nil
		}
		y.Negate()
	}

	y.Zero()
	return y, dlcerr.New(dlcerr.KindInvalidInputEncoding, "signature", "recovered key does not match the encryption key")
}

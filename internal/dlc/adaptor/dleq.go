package adaptor

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
)

var (
	dleqTag      = []byte("DLC/ECDSAadaptor/dleq")
	dleqNonceTag = []byte("DLC/ECDSAadaptor/dleq/nonce")
)

// Proof shows that R' = k·G and R = k·Y share the discrete log k without
// revealing it (Chaum-Pedersen, Fiat-Shamir).
type Proof struct {
	E secp256k1.ModNScalar
	Z secp256k1.ModNScalar
}

func compressed(p *secp256k1.JacobianPoint) []byte {
	a := *p
	pub, err := secp.ToPublicKey(&a)
	if err != nil {
		return make([]byte, secp.CompressedSize)
	}
	return pub.SerializeCompressed()
}

func dleqChallenge(y, rPrime, r, a1, a2 *secp256k1.JacobianPoint) secp256k1.ModNScalar {
	return secp.HashToScalar(secp.TaggedHash(dleqTag,
		compressed(y), compressed(rPrime), compressed(r), compressed(a1), compressed(a2)))
}

// proveDLEQ proves log_G(rPrime) == log_y(r) == k. The proof nonce is derived
// from k and the statement, so proofs are deterministic.
func proveDLEQ(k *secp256k1.ModNScalar, y, rPrime, r *secp256k1.JacobianPoint) Proof {
	kb := k.Bytes()
	defer func() {
		for i := range kb {
			kb[i] = 0
		}
	}()

	var a secp256k1.ModNScalar
	for counter := uint32(0); ; counter++ {
		var cb [4]byte
		binary.BigEndian.PutUint32(cb[:], counter)
		a = secp.HashToScalar(secp.TaggedHash(dleqNonceTag, kb[:], compressed(y), compressed(rPrime), compressed(r), cb[:]))
		if !a.IsZero() {
			break
		}
	}

	a1 := secp.MulBase(&a)
	a2 := secp.Mul(&a, y)
	e := dleqChallenge(y, rPrime, r, &a1, &a2)

	// z = a + e·k
	var z secp256k1.ModNScalar
	z.Mul2(&e, k).Add(&a)
	a.Zero()

	return Proof{E: e, Z: z}
}

// verifyDLEQ recomputes A1 = z·G - e·R' and A2 = z·Y - e·R and checks the
// challenge.
func verifyDLEQ(proof *Proof, y, rPrime, r *secp256k1.JacobianPoint) bool {
	var negE secp256k1.ModNScalar
	negE.NegateVal(&proof.E)

	zG := secp.MulBase(&proof.Z)
	eRp := secp.Mul(&negE, rPrime)
	a1 := secp.Add(&zG, &eRp)

	zY := secp.Mul(&proof.Z, y)
	eR := secp.Mul(&negE, r)
	a2 := secp.Add(&zY, &eR)

	if secp.IsInfinity(&a1) || secp.IsInfinity(&a2) {
		return false
	}

	e := dleqChallenge(y, rPrime, r, &a1, &a2)
	return e.Equals(&proof.E)
}

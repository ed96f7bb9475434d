package signer

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// compactRecoveryByte is the recovery code SignCompact prepends.
const compactRecoveryByte = 1

// Sign produces a deterministic (RFC6979) low-S signature over hash.
func Sign(privateKey *secp256k1.PrivateKey, hash []byte) *SignHashResponse {
	sig := ecdsa.Sign(privateKey, hash)
	compact := ecdsa.SignCompact(privateKey, hash, true)

	return &SignHashResponse{
		Signature: sig,
		DER:       sig.Serialize(),
		Compact:   compact[compactRecoveryByte:],
	}
}

// Verify reports whether der is a valid low-S signature of hash by pub.
func Verify(pub *secp256k1.PublicKey, hash []byte, der []byte) bool {
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false
	}
	if !IsLowS(sig) {
		return false
	}
	return sig.Verify(hash, pub)
}

// IsLowS reports whether s is at most half the curve order.
func IsLowS(sig *ecdsa.Signature) bool {
	s := sig.S()
	return !s.IsOverHalfOrder()
}

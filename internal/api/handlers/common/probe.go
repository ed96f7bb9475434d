package common

import (
	"context"
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
)

var probeMessage = sha256.Sum256([]byte("dlcsigner health probe"))

// ProbeCurve signs and verifies with a fixed throwaway key.
func ProbeCurve(ctx context.Context) []error {
	var errs []error

	if err := ctx.Err(); err != nil {
		return append(errs, errors.Wrap(err, "probe aborted"))
	}

	var one secp256k1.ModNScalar
	one.SetInt(1)
	key := secp256k1.NewPrivateKey(&one)
	defer key.Zero()

	resp := signer.Sign(key, probeMessage[:])
	if !signer.Verify(key.PubKey(), probeMessage[:], resp.DER) {
		errs = append(errs, errors.New("signature did not verify"))
	}
	if !signer.IsLowS(resp.Signature) {
		errs = append(errs, errors.New("signature is not low-S"))
	}

	return errs
}

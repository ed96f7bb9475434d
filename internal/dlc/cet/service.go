package cet

import (
	"context"
	"runtime"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/dlc/adaptor"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"golang.org/x/sync/errgroup"
)

type service struct {
	keyring keyring.Manager
	metrics *metrics.Service
	limits  Limits
}

// NewService creates a new CET adaptor signature Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keyringManager keyring.Manager, metricsService *metrics.Service, limits Limits) Service {
	if limits.Workers <= 0 {
		limits.Workers = runtime.GOMAXPROCS(0)
	}
	if limits.DefaultBase == 0 {
		limits.DefaultBase = outcome.DefaultBase
	}

	return &service{
		keyring: keyringManager,
		metrics: metricsService,
		limits:  limits,
	}
}

// CreateAdaptorSigs signs every CET of req under the adaptor point of its pattern
func (s *service) CreateAdaptorSigs(ctx context.Context, req *Request) (result *Result, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpCreateCETAdaptorSig, time.Since(start), err) }()

	batch, err := Decode(req, s.limits)
	if err != nil {
		return nil, err
	}

	keyCtx, err := s.keyring.Resolve(req.Xpub)
	if err != nil {
		return nil, err
	}

	privateKey, err := keyCtx.SigningKey(batch.SigningKeyIndex, batch.SigningPubkey)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer privateKey.Zero()

	points, err := AdaptorPoints(batch)
	if err != nil {
		return nil, err
	}

	sigs, err := s.sign(ctx, privateKey, batch.Sighashes, points)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveCETBatch(len(sigs))
	util.LogFromContext(ctx).Debug().
		Str("component", "cet").
		Int("num_cets", len(sigs)).
		Int("num_digits", batch.NumDigits).
		Dur("took", time.Since(start)).
		Msg("Created CET adaptor signatures")

	return &Result{Signatures: sigs}, nil
}

// AdaptorPoints computes the adaptor point of every pattern of batch. The
// attestation point of each (position, digit) is computed once.
func AdaptorPoints(batch *Batch) ([]*secp256k1.PublicKey, error) {
	table, err := oracle.NewTable(batch.Oracle, batch.Nonces, batch.Base)
	if err != nil {
		return nil, err
	}

	points := make([]*secp256k1.PublicKey, len(batch.Patterns))
	for i, pattern := range batch.Patterns {
		if points[i], err = table.AdaptorPoint(pattern); err != nil {
			return nil, errors.Wrapf(err, "cet %d", i)
		}
	}

	return points, nil
}

// sign encrypts one signature per sighash on a bounded worker group. The
// output keeps the input order; any failure discards the whole batch.
func (s *service) sign(ctx context.Context, privateKey *secp256k1.PrivateKey, sighashes [][secp.HashSize]byte, points []*secp256k1.PublicKey) ([]*adaptor.Signature, error) {
	sigs := make([]*adaptor.Signature, len(sighashes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.Workers)

	for i := range sighashes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(err, "cet signing aborted")
			}

			sig, err := adaptor.Encrypt(privateKey, sighashes[i], points[i])
			if err != nil {
				return errors.Wrapf(err, "cet %d", i)
			}
			sigs[i] = sig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sigs, nil
}

// VerifyAdaptorSig checks a counterparty's adaptor signature for one CET
func (s *service) VerifyAdaptorSig(_ context.Context, req *VerifyRequest) (valid bool, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpVerifyCETAdaptorSig, time.Since(start), err) }()

	base := req.Base
	if base == 0 {
		base = s.limits.DefaultBase
	}

	nonceStrings := secp.SplitList(req.Nonces)
	if len(nonceStrings) == 0 || (s.limits.MaxDigits > 0 && len(nonceStrings) > s.limits.MaxDigits) {
		return false, dlcerr.New(dlcerr.KindInvalidInputEncoding, "nonces", "need between 1 and %d nonces, got %d", s.limits.MaxDigits, len(nonceStrings))
	}
	if len(req.Outcome) != len(nonceStrings) {
		return false, dlcerr.Count(dlcerr.KindNonceCountMismatch, "nonces", len(req.Outcome), len(nonceStrings))
	}

	oraclePub, err := secp.ParseXOnlyHex(dlcerr.KindInvalidOraclePubkey, "oracle_pubkey", req.OraclePubkey)
	if err != nil {
		return false, err
	}
	nonces, err := decodeNonces(nonceStrings)
	if err != nil {
		return false, err
	}
	signingPubkey, err := secp.ParsePointHex("signing_pubkey", req.SigningPubkey)
	if err != nil {
		return false, err
	}
	pattern, err := outcome.ParsePattern("outcome", req.Outcome, base, len(nonces))
	if err != nil {
		return false, err
	}
	sighash, err := secp.ParseHash("sighash", req.Sighash)
	if err != nil {
		return false, err
	}
	raw, err := secp.DecodeHex("adaptor_sig", req.AdaptorSig)
	if err != nil {
		return false, err
	}
	sig, err := adaptor.Parse("adaptor_sig", raw)
	if err != nil {
		return false, err
	}

	point, err := oracle.AdaptorPoint(oraclePub, nonces, pattern, base)
	if err != nil {
		return false, err
	}

	return adaptor.Verify(sig, signingPubkey, sighash, point), nil
}

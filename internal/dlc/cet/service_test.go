package cet_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/dlc/adaptor"
	"github/dlcplaza/go-dlcsigner/internal/dlc/cet"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"lukechampine.com/frand"
)

var limits = cet.Limits{MaxDigits: 32, MaxCets: 1024, Workers: 4, DefaultBase: 2}

type announcement struct {
	key     *secp256k1.PrivateKey
	secrets []secp256k1.ModNScalar
	nonces  []*secp256k1.PublicKey
}

func newAnnouncement(t *testing.T, numDigits int) *announcement {
	t.Helper()

	key, err := secp256k1.GeneratePrivateKeyFromRand(frand.Reader)
	require.NoError(t, err)

	a := &announcement{key: key}
	for i := 0; i < numDigits; i++ {
		n, err := oracle.DeriveNonce(key, "btcusd", uint32(i))
		require.NoError(t, err)
		a.secrets = append(a.secrets, n.Secret)
		a.nonces = append(a.nonces, n.Public)
	}
	return a
}

func (a *announcement) oraclePubkey() string {
	return hex.EncodeToString(schnorr.SerializePubKey(a.key.PubKey()))
}

func (a *announcement) nonceList() string {
	parts := make([]string, len(a.nonces))
	for i, n := range a.nonces {
		parts[i] = hex.EncodeToString(schnorr.SerializePubKey(n))
	}
	return strings.Join(parts, ",")
}

// attest returns the oracle's signature scalars for outcome digits.
func (a *announcement) attest(digits []int) []secp256k1.ModNScalar {
	out := make([]secp256k1.ModNScalar, len(digits))
	for i, d := range digits {
		out[i] = oracle.AttestDigit(a.key, &a.secrets[i], d)
	}
	return out
}

type party struct {
	ring   keyring.Manager
	svc    cet.Service
	keyCtx *hdkey.Context
	pubkey *secp256k1.PublicKey
}

func newParty(t *testing.T) *party {
	t.Helper()

	keyCtx, err := hdkey.NewContext(frand.Bytes(32), &chaincfg.RegressionNetParams, "")
	require.NoError(t, err)

	ring := keyring.NewManager(0)
	ring.Activate(keyCtx)

	pub, err := keyCtx.PublicKey(7)
	require.NoError(t, err)

	return &party{ring: ring, svc: cet.NewService(ring, nil, limits), keyCtx: keyCtx, pubkey: pub}
}

func sighashList(n int) ([][32]byte, string) {
	hashes := make([][32]byte, n)
	parts := make([]string, n)
	for i := range hashes {
		hashes[i] = sha256.Sum256([]byte(fmt.Sprintf("cet-%d", i)))
		parts[i] = hex.EncodeToString(hashes[i][:])
	}
	return hashes, strings.Join(parts, ",")
}

func (p *party) request(a *announcement, numCets int, template, wildcards string) *cet.Request {
	_, sighashes := sighashList(numCets)
	return &cet.Request{
		NumDigits:           len(a.nonces),
		NumCets:             numCets,
		DigitStringTemplate: template,
		OraclePubkey:        a.oraclePubkey(),
		SigningKeyIndex:     7,
		SigningPubkey:       secp.EncodePoint(p.pubkey),
		Nonces:              a.nonceList(),
		IntervalWildcards:   wildcards,
		Sighashes:           sighashes,
	}
}

func TestCreateAdaptorSigsTwoIntervals(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	req := p.request(a, 2, "???", "000,1??")
	result, err := p.svc.CreateAdaptorSigs(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Signatures, 2)

	hashes, _ := sighashList(2)
	patterns := []string{"000", "1??"}
	for i, sig := range result.Signatures {
		pattern, err := outcome.ParsePattern("pattern", patterns[i], 2, 3)
		require.NoError(t, err)

		point, err := oracle.AdaptorPoint(a.key.PubKey(), a.nonces, pattern, 2)
		require.NoError(t, err)
		assert.True(t, adaptor.Verify(sig, p.pubkey, hashes[i], point), "cet %d", i)
	}

	// the oracle attests 5 = 101, which unlocks only the second CET
	attestations := a.attest([]int{1, 0, 1})
	secret, err := oracle.AdaptorSecret(attestations, outcome.Pattern{1, outcome.Wildcard, outcome.Wildcard})
	require.NoError(t, err)

	final, err := adaptor.Decrypt(result.Signatures[1], &secret)
	require.NoError(t, err)
	assert.True(t, final.Verify(hashes[1][:], p.pubkey))

	wrong, err := adaptor.Decrypt(result.Signatures[0], &secret)
	require.NoError(t, err)
	assert.False(t, wrong.Verify(hashes[0][:], p.pubkey))
}

func TestCreateAdaptorSigsDeterministicAndOrdered(t *testing.T) {
	a := newAnnouncement(t, 4)
	p := newParty(t)

	patterns, err := outcome.DecomposeInterval(1, 14, 2, 4)
	require.NoError(t, err)
	wildcards := make([]string, len(patterns))
	for i, pattern := range patterns {
		wildcards[i] = pattern.String()
	}

	req := p.request(a, len(patterns), "????", strings.Join(wildcards, ","))
	first, err := p.svc.CreateAdaptorSigs(context.Background(), req)
	require.NoError(t, err)

	serial := cet.NewService(p.ring, nil, cet.Limits{Workers: 1})
	second, err := serial.CreateAdaptorSigs(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, first.Signatures, len(patterns))
	for i := range first.Signatures {
		assert.Equal(t, first.Signatures[i].Serialize(), second.Signatures[i].Serialize(), "cet %d", i)
	}
}

func TestCreateAdaptorSigsTemplateConstrains(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	// template fixes the first digit, so "?0?" means "10?"
	result, err := p.svc.CreateAdaptorSigs(context.Background(), p.request(a, 1, "1??", "?0?"))
	require.NoError(t, err)

	hashes, _ := sighashList(1)
	point, err := oracle.AdaptorPoint(a.key.PubKey(), a.nonces, outcome.Pattern{1, 0, outcome.Wildcard}, 2)
	require.NoError(t, err)
	assert.True(t, adaptor.Verify(result.Signatures[0], p.pubkey, hashes[0], point))

	_, err = p.svc.CreateAdaptorSigs(context.Background(), p.request(a, 1, "1??", "0??"))
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}

func TestCreateAdaptorSigsErrors(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)
	other := newAnnouncement(t, 2)

	tests := []struct {
		name   string
		mutate func(req *cet.Request)
		want   error
	}{
		{"template too short", func(req *cet.Request) { req.DigitStringTemplate = "??" }, dlcerr.ErrDigitCountMismatch},
		{"pattern too long", func(req *cet.Request) { req.IntervalWildcards = "0000,1??" }, dlcerr.ErrDigitCountMismatch},
		{"missing nonce", func(req *cet.Request) { req.Nonces = other.nonceList() }, dlcerr.ErrNonceCountMismatch},
		{"fewer patterns", func(req *cet.Request) { req.IntervalWildcards = "000" }, dlcerr.ErrCountMismatch},
		{"more sighashes", func(req *cet.Request) { _, req.Sighashes = sighashList(3) }, dlcerr.ErrCountMismatch},
		{"num cets", func(req *cet.Request) { req.NumCets = 3 }, dlcerr.ErrCountMismatch},
		{"oracle pubkey", func(req *cet.Request) { req.OraclePubkey = "02" + strings.Repeat("ff", 32) }, dlcerr.ErrInvalidOraclePubkey},
		{"oracle hex", func(req *cet.Request) { req.OraclePubkey = "zz" }, dlcerr.ErrInvalidOraclePubkey},
		{"nonce point", func(req *cet.Request) {
			req.Nonces = strings.Repeat("ff", 32) + "," + strings.Repeat("ff", 32) + "," + strings.Repeat("ff", 32)
		}, dlcerr.ErrInvalidPoint},
		{"signing pubkey", func(req *cet.Request) { req.SigningPubkey = "04" }, dlcerr.ErrInvalidPoint},
		{"pattern digit", func(req *cet.Request) { req.IntervalWildcards = "002,1??" }, dlcerr.ErrInvalidInputEncoding},
		{"sighash length", func(req *cet.Request) { req.Sighashes = "00,11" }, dlcerr.ErrInvalidHashLength},
		{"signer mismatch", func(req *cet.Request) { req.SigningKeyIndex = 8 }, dlcerr.ErrSignerMismatch},
		{"index overflow", func(req *cet.Request) { req.SigningKeyIndex = int64(hdkey.MaxIndex) + 1 }, dlcerr.ErrDerivationOverflow},
		{"all wildcards", func(req *cet.Request) { req.IntervalWildcards = "000,???" }, dlcerr.ErrDegenerateAdaptorPoint},
		{"too many digits", func(req *cet.Request) { req.NumDigits = 33 }, dlcerr.ErrInvalidInputEncoding},
		{"base", func(req *cet.Request) { req.Base = 1 }, dlcerr.ErrInvalidInputEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := p.request(a, 2, "???", "000,1??")
			tt.mutate(req)

			result, err := p.svc.CreateAdaptorSigs(context.Background(), req)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, result)
		})
	}
}

func TestCreateAdaptorSigsCountMismatchDetails(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	req := p.request(a, 2, "???", "000,1??")
	req.Nonces = newAnnouncement(t, 2).nonceList()

	_, err := p.svc.CreateAdaptorSigs(context.Background(), req)
	e, ok := dlcerr.As(err)
	require.True(t, ok)
	assert.Equal(t, dlcerr.KindNonceCountMismatch, e.Kind)
	assert.Equal(t, 3, e.Expected)
	assert.Equal(t, 2, e.Actual)
}

func TestCreateAdaptorSigsNotInitialized(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	empty := cet.NewService(keyring.NewManager(0), nil, limits)
	_, err := empty.CreateAdaptorSigs(context.Background(), p.request(a, 2, "???", "000,1??"))
	require.ErrorIs(t, err, dlcerr.ErrKeyNotInitialized)
}

func TestCreateAdaptorSigsCancelled(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.svc.CreateAdaptorSigs(ctx, p.request(a, 2, "???", "000,1??"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestVerifyAdaptorSig(t *testing.T) {
	a := newAnnouncement(t, 3)
	p := newParty(t)

	req := p.request(a, 2, "???", "000,1??")
	result, err := p.svc.CreateAdaptorSigs(context.Background(), req)
	require.NoError(t, err)

	sighashes := strings.Split(req.Sighashes, ",")
	verify := &cet.VerifyRequest{
		AdaptorSig:    hex.EncodeToString(result.Signatures[1].Serialize()),
		SigningPubkey: req.SigningPubkey,
		Sighash:       sighashes[1],
		OraclePubkey:  req.OraclePubkey,
		Nonces:        req.Nonces,
		Outcome:       "1??",
	}

	valid, err := p.svc.VerifyAdaptorSig(context.Background(), verify)
	require.NoError(t, err)
	assert.True(t, valid)

	verify.Outcome = "0??"
	valid, err = p.svc.VerifyAdaptorSig(context.Background(), verify)
	require.NoError(t, err)
	assert.False(t, valid)

	verify.Outcome = "1?"
	_, err = p.svc.VerifyAdaptorSig(context.Background(), verify)
	require.ErrorIs(t, err, dlcerr.ErrNonceCountMismatch)

	verify.Outcome = "1??"
	verify.AdaptorSig = "00"
	_, err = p.svc.VerifyAdaptorSig(context.Background(), verify)
	require.ErrorIs(t, err, dlcerr.ErrInvalidInputEncoding)
}

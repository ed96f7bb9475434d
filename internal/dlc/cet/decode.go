package cet

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
)

// Decode validates req and decodes every field. Checks run in a fixed order
// so a request with several problems always reports the same one: sizes,
// digit counts, nonce count, CET counts, oracle key, points, remaining
// encodings.
func Decode(req *Request, limits Limits) (*Batch, error) {
	base := req.Base
	if base == 0 {
		base = limits.DefaultBase
	}
	if err := outcome.CheckBase("base", base); err != nil {
		return nil, err
	}
	if req.NumDigits <= 0 || (limits.MaxDigits > 0 && req.NumDigits > limits.MaxDigits) {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "num_digits", "num_digits must be within [1, %d], got %d", limits.MaxDigits, req.NumDigits)
	}
	if req.NumCets <= 0 || (limits.MaxCets > 0 && req.NumCets > limits.MaxCets) {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "num_cets", "num_cets must be within [1, %d], got %d", limits.MaxCets, req.NumCets)
	}

	if len(req.DigitStringTemplate) != req.NumDigits {
		return nil, dlcerr.Count(dlcerr.KindDigitCountMismatch, "digit_string_template", req.NumDigits, len(req.DigitStringTemplate))
	}
	patternStrings := secp.SplitList(req.IntervalWildcards)
	for _, p := range patternStrings {
		if len(p) != req.NumDigits {
			return nil, dlcerr.Count(dlcerr.KindDigitCountMismatch, "interval_wildcards", req.NumDigits, len(p))
		}
	}

	nonceStrings := secp.SplitList(req.Nonces)
	if len(nonceStrings) != req.NumDigits {
		return nil, dlcerr.Count(dlcerr.KindNonceCountMismatch, "nonces", req.NumDigits, len(nonceStrings))
	}

	if len(patternStrings) != req.NumCets {
		return nil, dlcerr.Count(dlcerr.KindCountMismatch, "interval_wildcards", req.NumCets, len(patternStrings))
	}
	sighashStrings := secp.SplitList(req.Sighashes)
	if len(sighashStrings) != req.NumCets {
		return nil, dlcerr.Count(dlcerr.KindCountMismatch, "sighashes", req.NumCets, len(sighashStrings))
	}

	oracle, err := secp.ParseXOnlyHex(dlcerr.KindInvalidOraclePubkey, "oracle_pubkey", req.OraclePubkey)
	if err != nil {
		return nil, err
	}

	nonces, err := decodeNonces(nonceStrings)
	if err != nil {
		return nil, err
	}

	signingPubkey, err := secp.ParsePointHex("signing_pubkey", req.SigningPubkey)
	if err != nil {
		return nil, err
	}

	index, err := hdkey.CheckIndex(req.SigningKeyIndex)
	if err != nil {
		return nil, err
	}

	template, err := outcome.ParsePattern("digit_string_template", req.DigitStringTemplate, base, req.NumDigits)
	if err != nil {
		return nil, err
	}

	patterns := make([]outcome.Pattern, len(patternStrings))
	for i, s := range patternStrings {
		p, err := outcome.ParsePattern("interval_wildcards", s, base, req.NumDigits)
		if err != nil {
			return nil, err
		}
		if patterns[i], err = p.Constrain("interval_wildcards", template); err != nil {
			return nil, err
		}
	}

	sighashes := make([][secp.HashSize]byte, len(sighashStrings))
	for i, s := range sighashStrings {
		if sighashes[i], err = secp.ParseHash("sighashes", s); err != nil {
			return nil, err
		}
	}

	return &Batch{
		NumDigits:       req.NumDigits,
		Base:            base,
		Oracle:          oracle,
		Nonces:          nonces,
		SigningKeyIndex: index,
		SigningPubkey:   signingPubkey,
		Template:        template,
		Patterns:        patterns,
		Sighashes:       sighashes,
	}, nil
}

func decodeNonces(nonceStrings []string) ([]*secp256k1.PublicKey, error) {
	nonces := make([]*secp256k1.PublicKey, len(nonceStrings))
	for i, s := range nonceStrings {
		nonce, err := secp.ParseXOnlyHex(dlcerr.KindInvalidPoint, "nonces", s)
		if err != nil {
			return nil, err
		}
		nonces[i] = nonce
	}
	return nonces, nil
}

// Package dlcerr defines the closed set of failures returned by the key
// derivation, signing and adaptor signature components.
package dlcerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure. The set is closed; callers switch on it.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInputEncoding
	KindInvalidEntropy
	KindInvalidMnemonic
	KindInvalidNetwork
	KindKeyNotInitialized
	KindDerivationOverflow
	KindInvalidHashLength
	KindSignerMismatch
	KindInvalidEventID
	KindCountMismatch
	KindDigitCountMismatch
	KindNonceCountMismatch
	KindInvalidOraclePubkey
	KindInvalidPoint
	KindDegenerateAdaptorPoint
	KindInternalCurveError
)

var kindNames = map[Kind]string{
	KindUnknown:                "UNKNOWN",
	KindInvalidInputEncoding:   "INVALID_INPUT_ENCODING",
	KindInvalidEntropy:         "INVALID_ENTROPY",
	KindInvalidMnemonic:        "INVALID_MNEMONIC",
	KindInvalidNetwork:         "INVALID_NETWORK",
	KindKeyNotInitialized:      "KEY_NOT_INITIALIZED",
	KindDerivationOverflow:     "DERIVATION_OVERFLOW",
	KindInvalidHashLength:      "INVALID_HASH_LENGTH",
	KindSignerMismatch:         "SIGNER_MISMATCH",
	KindInvalidEventID:         "INVALID_EVENT_ID",
	KindCountMismatch:          "COUNT_MISMATCH",
	KindDigitCountMismatch:     "DIGIT_COUNT_MISMATCH",
	KindNonceCountMismatch:     "NONCE_COUNT_MISMATCH",
	KindInvalidOraclePubkey:    "INVALID_ORACLE_PUBKEY",
	KindInvalidPoint:           "INVALID_POINT",
	KindDegenerateAdaptorPoint: "DEGENERATE_ADAPTOR_POINT",
	KindInternalCurveError:     "INTERNAL_CURVE_ERROR",
}

// String returns the upper snake case name used on the wire.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// IsCountMismatch reports whether k belongs to the count mismatch family.
func (k Kind) IsCountMismatch() bool {
	return k == KindCountMismatch || k == KindDigitCountMismatch || k == KindNonceCountMismatch
}

// Internal reports whether k signals an unexpected arithmetic failure rather
// than bad caller input.
func (k Kind) Internal() bool {
	return k == KindInternalCurveError || k == KindUnknown
}

// Error is the concrete error type returned by the core packages.
type Error struct {
	Kind Kind

	// Field names the offending input, if any.
	Field string

	// Expected and Actual are set for the count mismatch family.
	Expected int
	Actual   int

	Msg string
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(e.Kind.String()))
	if e.Field != "" {
		b.WriteString(" (")
		b.WriteString(e.Field)
		b.WriteString(")")
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Kind.IsCountMismatch() {
		fmt.Fprintf(&b, ": expected %d, got %d", e.Expected, e.Actual)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinel values like
// ErrSignerMismatch can be used with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Field == "" && t.Msg == "" && t.Err == nil
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidInputEncoding   = &Error{Kind: KindInvalidInputEncoding}
	ErrInvalidEntropy         = &Error{Kind: KindInvalidEntropy}
	ErrInvalidMnemonic        = &Error{Kind: KindInvalidMnemonic}
	ErrInvalidNetwork         = &Error{Kind: KindInvalidNetwork}
	ErrKeyNotInitialized      = &Error{Kind: KindKeyNotInitialized}
	ErrDerivationOverflow     = &Error{Kind: KindDerivationOverflow}
	ErrInvalidHashLength      = &Error{Kind: KindInvalidHashLength}
	ErrSignerMismatch         = &Error{Kind: KindSignerMismatch}
	ErrInvalidEventID         = &Error{Kind: KindInvalidEventID}
	ErrCountMismatch          = &Error{Kind: KindCountMismatch}
	ErrDigitCountMismatch     = &Error{Kind: KindDigitCountMismatch}
	ErrNonceCountMismatch     = &Error{Kind: KindNonceCountMismatch}
	ErrInvalidOraclePubkey    = &Error{Kind: KindInvalidOraclePubkey}
	ErrInvalidPoint           = &Error{Kind: KindInvalidPoint}
	ErrDegenerateAdaptorPoint = &Error{Kind: KindDegenerateAdaptorPoint}
	ErrInternalCurveError     = &Error{Kind: KindInternalCurveError}
)

// New returns an error of the given kind for field with a formatted message.
func New(kind Kind, field string, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind for field wrapping cause.
func Wrap(kind Kind, field string, cause error) *Error {
	return &Error{Kind: kind, Field: field, Err: cause}
}

// Count returns a count mismatch of the given kind.
func Count(kind Kind, field string, expected, actual int) *Error {
	return &Error{Kind: kind, Field: field, Expected: expected, Actual: actual}
}

// KindOf extracts the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Package method models HTTP request methods and their safety and
// idempotency properties.
//
// The catalog follows the IANA HTTP Method Registry. Methods outside it are
// still representable; they are treated as neither safe nor idempotent
// unless the caller says otherwise through [Unregistered].
//
// Reference:
//
// - https://www.iana.org/assignments/http-methods/http-methods.xhtml
//
// - https://datatracker.ietf.org/doc/html/rfc7231#section-4.2
package method

import (
	"http-common/util/rule"

	"github.com/pkg/errors"
)

type Method struct {
	token      string
	safe       bool
	idempotent bool
	registered bool
}

var (
	ErrUnknownMethod     = errors.New("unknown method")
	ErrInvalidToken      = errors.New("invalid method token")
	ErrSafeNotIdempotent = errors.New("safe method must be idempotent")
)

// Lookup returns the catalog entry for token.
// Tokens are case-sensitive, so "get" is not GET.
func Lookup(token string) (Method, error) {
	m, ok := catalog[token]
	if !ok {
		return Method{}, errors.Wrapf(ErrUnknownMethod, "%q", token)
	}
	return m, nil
}

// FromToken returns the catalog entry for token, or an unregistered Method
// carrying token verbatim that is neither safe nor idempotent.
//
// A token missing from the catalog today may be added later, at which point
// FromToken starts returning the registered method for it.
func FromToken(token string) Method {
	if m, ok := catalog[token]; ok {
		return m
	}
	return Method{token: token}
}

// Parse checks that s is a valid token before resolving it with [FromToken].
func Parse(s string) (Method, error) {
	if !rule.IsValidToken(s) {
		return Method{}, errors.Wrapf(ErrInvalidToken, "%q", s)
	}
	return FromToken(s), nil
}

// Unregistered creates an extension method with known properties.
// Registered tokens resolve to their catalog entry and ignore safe and
// idempotent.
func Unregistered(token string, safe, idempotent bool) (Method, error) {
	if !rule.IsValidToken(token) {
		return Method{}, errors.Wrapf(ErrInvalidToken, "%q", token)
	}
	if m, ok := catalog[token]; ok {
		return m, nil
	}
	if safe && !idempotent {
		return Method{}, errors.Wrapf(ErrSafeNotIdempotent, "%q", token)
	}

	return Method{token: token, safe: safe, idempotent: idempotent}, nil
}

func (m Method) Token() string  { return m.token }
func (m Method) String() string { return m.token }

// IsSafe reports whether the method is essentially read-only.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-4.2.1
func (m Method) IsSafe() bool { return m.safe }

// IsIdempotent reports whether multiple identical requests have the same
// intended effect as a single one.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-4.2.2
func (m Method) IsIdempotent() bool { return m.idempotent }

func (m Method) IsRegistered() bool { return m.registered }

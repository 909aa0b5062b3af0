package method

import (
	"slices"
)

// Kept in token order.
var (
	ACL               = add("ACL", false, true)               // RFC 3744, 8.1
	BaselineControl   = add("BASELINE-CONTROL", false, true)  // RFC 3253, 12.6
	Bind              = add("BIND", false, true)              // RFC 5842, 4
	Checkin           = add("CHECKIN", false, true)           // RFC 3253, 4.4 and 9.4
	Checkout          = add("CHECKOUT", false, true)          // RFC 3253, 4.3 and 8.8
	Connect           = add("CONNECT", false, false)          // RFC 7231, 4.3.6
	Copy              = add("COPY", false, true)              // RFC 4918, 9.8
	Delete            = add("DELETE", false, true)            // RFC 7231, 4.3.5
	Get               = add("GET", true, true)                // RFC 7231, 4.3.1
	Head              = add("HEAD", true, true)               // RFC 7231, 4.3.2
	Label             = add("LABEL", false, true)             // RFC 3253, 8.2
	Link              = add("LINK", false, true)              // RFC 2068, 19.6.1.2
	Lock              = add("LOCK", false, false)             // RFC 4918, 9.10
	Merge             = add("MERGE", false, true)             // RFC 3253, 11.2
	MkActivity        = add("MKACTIVITY", false, true)        // RFC 3253, 13.5
	MkCalendar        = add("MKCALENDAR", false, true)        // RFC 4791, 5.3.1
	MkCol             = add("MKCOL", false, true)             // RFC 4918, 9.3
	MkRedirectRef     = add("MKREDIRECTREF", false, true)     // RFC 4437, 6
	MkWorkspace       = add("MKWORKSPACE", false, true)       // RFC 3253, 6.3
	Move              = add("MOVE", false, true)              // RFC 4918, 9.9
	Options           = add("OPTIONS", true, true)            // RFC 7231, 4.3.7
	OrderPatch        = add("ORDERPATCH", false, true)        // RFC 3648, 7
	Patch             = add("PATCH", false, false)            // RFC 5789, 2
	Post              = add("POST", false, false)             // RFC 7231, 4.3.3
	PropFind          = add("PROPFIND", true, true)           // RFC 4918, 9.1
	PropPatch         = add("PROPPATCH", false, true)         // RFC 4918, 9.2
	Put               = add("PUT", false, true)               // RFC 7231, 4.3.4
	Rebind            = add("REBIND", false, true)            // RFC 5842, 6
	Report            = add("REPORT", true, true)             // RFC 3253, 3.6
	Search            = add("SEARCH", true, true)             // RFC 5323, 2
	Trace             = add("TRACE", true, true)              // RFC 7231, 4.3.8
	Unbind            = add("UNBIND", false, true)            // RFC 5842, 5
	Uncheckout        = add("UNCHECKOUT", false, true)        // RFC 3253, 4.5
	Unlink            = add("UNLINK", false, true)            // RFC 2068, 19.6.1.3
	Unlock            = add("UNLOCK", false, true)            // RFC 4918, 9.11
	Update            = add("UPDATE", false, true)            // RFC 3253, 7.1
	UpdateRedirectRef = add("UPDATEREDIRECTREF", false, true) // RFC 4437, 7
	VersionControl    = add("VERSION-CONTROL", false, true)   // RFC 3253, 3.5
)

// Written only during package initialization.
var (
	catalog = make(map[string]Method)
	ordered []Method
)

func add(token string, safe, idempotent bool) Method {
	if safe && !idempotent {
		panic("method: " + token + ": " + ErrSafeNotIdempotent.Error())
	}
	if _, dup := catalog[token]; dup {
		panic("method: registered twice: " + token)
	}

	m := Method{token: token, safe: safe, idempotent: idempotent, registered: true}
	catalog[token] = m
	ordered = append(ordered, m)
	return m
}

// Registered returns the whole catalog in token order.
func Registered() []Method {
	return slices.Clone(ordered)
}

// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-4.2.1
func DefaultSafeMethods() []Method {
	return []Method{Get, Head, Options, Trace}
}

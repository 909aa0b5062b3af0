// Package status models the HTTP status-code space.
//
// Every integer in [100, 599] is a valid [Code]. Codes registered with IANA
// carry a canonical reason phrase, the rest are identified by value only.
//
// Reference:
//
// - https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
//
// - https://datatracker.ietf.org/doc/html/rfc7231#section-6
package status

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	minCode = 100
	maxCode = 599
)

// Code is an HTTP status code in [100, 599].
type Code uint16

// Informational 1XX
var (
	Continue           = add(100, "Continue")            // RFC 7231, 6.2.1
	SwitchingProtocols = add(101, "Switching Protocols") // RFC 7231, 6.2.2
	Processing         = add(102, "Processing")          // RFC 2518
)

// Successful 2XX
var (
	OK                          = add(200, "OK")                            // RFC 7231, 6.3.1
	Created                     = add(201, "Created")                       // RFC 7231, 6.3.2
	Accepted                    = add(202, "Accepted")                      // RFC 7231, 6.3.3
	NonAuthoritativeInformation = add(203, "Non-Authoritative Information") // RFC 7231, 6.3.4
	NoContent                   = add(204, "No Content")                    // RFC 7231, 6.3.5
	ResetContent                = add(205, "Reset Content")                 // RFC 7231, 6.3.6
	PartialContent              = add(206, "Partial Content")               // RFC 7233, 4.1
	MultiStatus                 = add(207, "Multi-Status")                  // RFC 4918
	AlreadyReported             = add(208, "Already Reported")              // RFC 5842
	IMUsed                      = add(226, "IM Used")                       // RFC 3229
)

// Redirection 3XX
var (
	MultipleChoices   = add(300, "Multiple Choices")   // RFC 7231, 6.4.1
	MovedPermanently  = add(301, "Moved Permanently")  // RFC 7231, 6.4.2
	Found             = add(302, "Found")              // RFC 7231, 6.4.3
	SeeOther          = add(303, "See Other")          // RFC 7231, 6.4.4
	NotModified       = add(304, "Not Modified")       // RFC 7232, 4.1
	UseProxy          = add(305, "Use Proxy")          // RFC 7231, 6.4.5
	_                 = Code(306)                      // Unused. RFC 7231, 6.4.6
	TemporaryRedirect = add(307, "Temporary Redirect") // RFC 7231, 6.4.7
	PermanentRedirect = add(308, "Permanent Redirect") // RFC 7238
)

// Client Error 4XX
var (
	BadRequest                  = add(400, "Bad Request")                     // RFC 7231, 6.5.1
	Unauthorized                = add(401, "Unauthorized")                    // RFC 7235, 3.1
	PaymentRequired             = add(402, "Payment Required")                // RFC 7231, 6.5.2
	Forbidden                   = add(403, "Forbidden")                       // RFC 7231, 6.5.3
	NotFound                    = add(404, "Not Found")                       // RFC 7231, 6.5.4
	MethodNotAllowed            = add(405, "Method Not Allowed")              // RFC 7231, 6.5.5
	NotAcceptable               = add(406, "Not Acceptable")                  // RFC 7231, 6.5.6
	ProxyAuthenticationRequired = add(407, "Proxy Authentication Required")   // RFC 7235, 3.2
	RequestTimeout              = add(408, "Request Timeout")                 // RFC 7231, 6.5.7
	Conflict                    = add(409, "Conflict")                        // RFC 7231, 6.5.8
	Gone                        = add(410, "Gone")                            // RFC 7231, 6.5.9
	LengthRequired              = add(411, "Length Required")                 // RFC 7231, 6.5.10
	PreconditionFailed          = add(412, "Precondition Failed")             // RFC 7232, 4.2
	PayloadTooLarge             = add(413, "Payload Too Large")               // RFC 7231, 6.5.11
	URITooLong                  = add(414, "URI Too Long")                    // RFC 7231, 6.5.12
	UnsupportedMediaType        = add(415, "Unsupported Media Type")          // RFC 7231, 6.5.13
	RangeNotSatisfiable         = add(416, "Range Not Satisfiable")           // RFC 7233, 4.4
	ExpectationFailed           = add(417, "Expectation Failed")              // RFC 7231, 6.5.14
	ImATeapot                   = add(418, "I'm a teapot")                    // RFC 2324. Not in the IANA registry.
	MisdirectedRequest          = add(421, "Misdirected Request")             // RFC 7540, 9.1.2
	UnprocessableEntity         = add(422, "Unprocessable Entity")            // RFC 4918
	Locked                      = add(423, "Locked")                          // RFC 4918
	FailedDependency            = add(424, "Failed Dependency")               // RFC 4918
	UpgradeRequired             = add(426, "Upgrade Required")                // RFC 7231, 6.5.15
	PreconditionRequired        = add(428, "Precondition Required")           // RFC 6585
	TooManyRequests             = add(429, "Too Many Requests")               // RFC 6585
	RequestHeaderFieldsTooLarge = add(431, "Request Header Fields Too Large") // RFC 6585
)

// Server Error 5XX
var (
	InternalServerError           = add(500, "Internal Server Error")           // RFC 7231, 6.6.1
	NotImplemented                = add(501, "Not Implemented")                 // RFC 7231, 6.6.2
	BadGateway                    = add(502, "Bad Gateway")                     // RFC 7231, 6.6.3
	ServiceUnavailable            = add(503, "Service Unavailable")             // RFC 7231, 6.6.4
	GatewayTimeout                = add(504, "Gateway Timeout")                 // RFC 7231, 6.6.5
	HTTPVersionNotSupported       = add(505, "HTTP Version Not Supported")      // RFC 7231, 6.6.6
	VariantAlsoNegotiates         = add(506, "Variant Also Negotiates")         // RFC 2295
	InsufficientStorage           = add(507, "Insufficient Storage")            // RFC 4918
	LoopDetected                  = add(508, "Loop Detected")                   // RFC 5842
	NotExtended                   = add(510, "Not Extended")                    // RFC 2774
	NetworkAuthenticationRequired = add(511, "Network Authentication Required") // RFC 6585
)

// Indexed by code - minCode. Empty means unregistered.
// Written only during package initialization.
var reasons [maxCode - minCode + 1]string

func add(code Code, reason string) Code {
	if !inRange(uint16(code)) {
		panic("status: registered code out of range: " + strconv.Itoa(int(code)))
	}
	if reasons[code-minCode] != "" {
		panic("status: code registered twice: " + strconv.Itoa(int(code)))
	}

	reasons[code-minCode] = reason
	return code
}

var ErrOutOfRange = errors.New("status code out of range")

func inRange(v uint16) bool { return minCode <= v && v <= maxCode }

// New returns the Code for v.
// It fails with [ErrOutOfRange] only when v is outside [100, 599].
func New(v uint16) (Code, error) {
	if !inRange(v) {
		return 0, errors.Wrapf(ErrOutOfRange, "%d not in [%d, %d]", v, minCode, maxCode)
	}
	return Code(v), nil
}

func (c Code) Value() uint16 { return uint16(c) }

// CanonicalReason returns the registered reason phrase.
// The phrase is for human readers only; never derive meaning from it.
func (c Code) CanonicalReason() (string, bool) {
	if !inRange(uint16(c)) {
		return "", false
	}
	reason := reasons[c-minCode]
	return reason, reason != ""
}

func (c Code) IsRegistered() bool {
	_, ok := c.CanonicalReason()
	return ok
}

// Class reports the class of c, determined by its first digit.
// It does not consult the registry, so unregistered codes have a class too.
func (c Code) Class() Class {
	switch {
	case c < 200:
		return Informational
	case c < 300:
		return Successful
	case c < 400:
		return Redirection
	case c < 500:
		return ClientError
	default:
		return ServerError
	}
}

// OrDefault returns c if it is registered, and the x00 code of its class
// otherwise.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-6-2
func (c Code) OrDefault() Code {
	if c.IsRegistered() {
		return c
	}
	return c.Class().DefaultCode()
}

// String formats the code with its reason, e.g. "418 I'm a teapot".
func (c Code) String() string {
	reason, ok := c.CanonicalReason()
	if !ok {
		reason = "<unknown status code>"
	}
	return strconv.FormatUint(uint64(c), 10) + " " + reason
}

// Registered returns every registered code in ascending order.
func Registered() []Code {
	codes := make([]Code, 0, 64)
	for idx, reason := range reasons {
		if reason != "" {
			codes = append(codes, Code(idx+minCode))
		}
	}
	return codes
}

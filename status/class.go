package status

// Class is the category of a status code, given by its first digit.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-6
type Class uint8

const (
	Informational Class = 1 // 1xx
	Successful    Class = 2 // 2xx
	Redirection   Class = 3 // 3xx
	ClientError   Class = 4 // 4xx
	ServerError   Class = 5 // 5xx
)

// DefaultCode returns the x00 code of the class.
//
// A client MUST treat an unrecognized status code as the x00 code of its
// class, and MUST NOT cache the response. Caching is up to the caller.
func (cl Class) DefaultCode() Code {
	return Code(cl) * 100
}

func (cl Class) Contains(c Code) bool { return c.Class() == cl }

func (cl Class) String() string {
	switch cl {
	case Informational:
		return "1xx (Informational)"
	case Successful:
		return "2xx (Successful)"
	case Redirection:
		return "3xx (Redirection)"
	case ClientError:
		return "4xx (Client Error)"
	case ServerError:
		return "5xx (Server Error)"
	}
	return "<unknown status class>"
}

package rule

// IsTChar reports whether r is allowed in a token:
// any VCHAR except delimiters.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.2-2
func IsTChar(r rune) bool {
	if IsAlpha(r) || IsDigit(r) {
		return true
	}

	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+',
		'-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}

// IsValidToken reports whether s matches token = 1*tchar.
func IsValidToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !IsTChar(c) {
			return false
		}
	}

	return true
}

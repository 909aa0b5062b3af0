package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testcases := []struct {
		desc     string
		token    string
		expected Method
		wantErr  bool
	}{
		{desc: "get", token: "GET", expected: Get},
		{desc: "hyphenated", token: "VERSION-CONTROL", expected: VersionControl},
		{desc: "webdav", token: "PROPFIND", expected: PropFind},
		{desc: "lower case", token: "get", wantErr: true},
		{desc: "extension", token: "PURGE", wantErr: true},
		{desc: "empty", token: "", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			m, err := Lookup(tc.token)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMethod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
			assert.True(t, m.IsRegistered())
		})
	}
}

func TestFromToken(t *testing.T) {
	testcases := []struct {
		token      string
		safe       bool
		idempotent bool
		registered bool
	}{
		{token: "GET", safe: true, idempotent: true, registered: true},
		{token: "HEAD", safe: true, idempotent: true, registered: true},
		{token: "POST", registered: true},
		{token: "PATCH", registered: true},
		{token: "PUT", idempotent: true, registered: true},
		{token: "DELETE", idempotent: true, registered: true},
		{token: "LOCK", registered: true},
		{token: "PURGE"},
		{token: "get"},
	}

	for _, tc := range testcases {
		t.Run(tc.token, func(t *testing.T) {
			m := FromToken(tc.token)
			assert.Equal(t, tc.token, m.Token())
			assert.Equal(t, tc.token, m.String())
			assert.Equal(t, tc.safe, m.IsSafe())
			assert.Equal(t, tc.idempotent, m.IsIdempotent())
			assert.Equal(t, tc.registered, m.IsRegistered())
		})
	}
}

func TestFromTokenEquality(t *testing.T) {
	assert.Equal(t, Get, FromToken("GET"))
	assert.True(t, FromToken("PURGE") == FromToken("PURGE"))
	assert.False(t, FromToken("PURGE") == FromToken("BREW"))
}

func TestParse(t *testing.T) {
	m, err := Parse("MKCOL")
	require.NoError(t, err)
	assert.Equal(t, MkCol, m)

	m, err = Parse("M-SEARCH")
	require.NoError(t, err)
	assert.False(t, m.IsRegistered())
	assert.Equal(t, "M-SEARCH", m.Token())

	for _, input := range []string{"", "GE T", "GET\r\n", "GET/"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "%q", input)
	}
}

func TestUnregistered(t *testing.T) {
	testcases := []struct {
		desc       string
		token      string
		safe       bool
		idempotent bool
		expected   Method
		wantErr    error
	}{
		{
			desc:       "safe extension",
			token:      "SPACEJUMP",
			safe:       true,
			idempotent: true,
			expected:   Method{token: "SPACEJUMP", safe: true, idempotent: true},
		},
		{
			desc:       "idempotent extension",
			token:      "PURGE",
			idempotent: true,
			expected:   Method{token: "PURGE", idempotent: true},
		},
		{
			desc:     "registered token keeps catalog flags",
			token:    "POST",
			safe:     true,
			expected: Post,
		},
		{
			desc:    "safe but not idempotent",
			token:   "BREW",
			safe:    true,
			wantErr: ErrSafeNotIdempotent,
		},
		{
			desc:    "invalid token",
			token:   "BR EW",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			m, err := Unregistered(tc.token, tc.safe, tc.idempotent)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

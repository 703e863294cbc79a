package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "Portfolio message from Jane Doe", Subject("Jane Doe"))
	assert.Equal(t, "Portfolio message from   Jane \t", Subject("  Jane \t"))
	assert.Equal(t, FallbackSubject, Subject(""))
	assert.Equal(t, FallbackSubject, Subject("   \n"))
}

func TestBuildURI_NamedSender(t *testing.T) {
	uri := BuildURI(Fields{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello there"})

	assert.Equal(t,
		"mailto:david.gilligan1997%40gmail.com?subject=Portfolio%20message%20from%20Jane%20Doe&body=Hello%20there",
		uri)
	assert.NotContains(t, uri, "jane%40example.com")
}

func TestBuildURI_KeepsNameVerbatim(t *testing.T) {
	uri := BuildURI(Fields{Name: "  Jane  ", Message: "hi"})
	assert.Equal(t,
		"mailto:david.gilligan1997%40gmail.com?subject=Portfolio%20message%20from%20%20%20Jane%20%20&body=hi",
		uri)
}

func TestBuildURI_EmptyNameAndMessage(t *testing.T) {
	uri := BuildURI(Fields{Email: "a@b.c"})
	assert.Equal(t, "mailto:david.gilligan1997%40gmail.com?subject=Portfolio%20message&body=", uri)
}

func TestBuildURI_RoundTripsReservedCharacters(t *testing.T) {
	msg := "a&b=c?d#e+f 100% sure\nline two: café ☕"
	name := "O'Brien & Sons"

	uri := BuildURI(Fields{Name: name, Message: msg})

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, Recipient, mustUnescape(t, u.Opaque))

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio message from "+name, q.Get("subject"))
	assert.Equal(t, msg, q.Get("body"))
	assert.Len(t, q, 2)
}

func TestEncodeComponent(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"abcXYZ019":   "abcXYZ019",
		"-_.!~*'()":   "-_.!~*'()",
		" ":           "%20",
		"+":           "%2B",
		"&=?#/:@":     "%26%3D%3F%23%2F%3A%40",
		"%":           "%25",
		"\n":          "%0A",
		"é":           "%C3%A9",
		"☕":           "%E2%98%95",
		"Hello there": "Hello%20there",
	}
	for in, want := range cases {
		assert.Equal(t, want, EncodeComponent(in), "input %q", in)
	}
}

func mustUnescape(t *testing.T, s string) string {
	t.Helper()
	out, err := url.PathUnescape(s)
	require.NoError(t, err)
	return out
}

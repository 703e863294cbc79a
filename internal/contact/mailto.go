// Package contact turns a submitted contact form into a mailto URI and
// hands it to the host for navigation. Nothing is sent from here.
package contact

import (
	"strings"
)

const (
	// Recipient is the fixed destination address.
	Recipient = "david.gilligan1997@gmail.com"

	// FallbackSubject is used when the sender leaves the name blank.
	FallbackSubject = "Portfolio message"

	subjectPrefix = "Portfolio message from "
)

// Fields are the named inputs of the contact form. Email is required by
// the form itself but does not appear in the URI.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Subject builds the subject line for a sender name. The name is used as
// typed; a blank one gives the fallback subject.
func Subject(name string) string {
	if strings.TrimSpace(name) == "" {
		return FallbackSubject
	}
	return subjectPrefix + name
}

// BuildURI returns the mailto URI for f. The message is carried verbatim;
// an empty message yields an empty body parameter.
func BuildURI(f Fields) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(EncodeComponent(Recipient))
	b.WriteString("?subject=")
	b.WriteString(EncodeComponent(Subject(f.Name)))
	b.WriteString("&body=")
	b.WriteString(EncodeComponent(f.Message))
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI
// component: every UTF-8 byte outside A-Z a-z 0-9 - _ . ! ~ * ' ( ) is
// written as %XX, and spaces become %20.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

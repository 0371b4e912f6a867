package peg

import "strings"

// NewLiteral returns a Matcher that succeeds iff the remaining text starts
// with s, consuming exactly s.
func NewLiteral(s string) *Matcher {
	return &Matcher{Kind: KindLiteral, Literal: s}
}

// unescapeLiteral interprets the body of a quoted grammar literal (the text
// between, but not including, its delimiting quote characters), recognizing
// the C-style escapes \n, \r, \t, \\, and an escaped copy of the delimiting
// quote itself. Any other backslash escape is a grammar syntax error: the
// engine does not fall back to a host string-literal parser (see the
// Literal unescaping design note).
func unescapeLiteral(quote byte, body string) (string, error) {
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(body) {
			return "", errUnescape("literal ends with a trailing backslash")
		}
		i++
		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case quote:
			b.WriteByte(quote)
		default:
			return "", errUnescape("unsupported escape \\" + string(e))
		}
	}
	return b.String(), nil
}

type unescapeError string

func (e unescapeError) Error() string { return string(e) }

func errUnescape(msg string) error { return unescapeError(msg) }

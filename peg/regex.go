package peg

import (
	"fmt"
	"regexp"
)

// NewRegex returns a Matcher that anchors pattern at the start of the
// remaining text: it never searches ahead, it only tests whether pattern
// matches a prefix of the text handed to Match. pattern is forwarded
// verbatim to Go's regexp (RE2) engine, which is the host regex dialect
// this implementation pins to, per the Open Question in the design notes.
//
// NewRegex panics if pattern does not compile; grammar-sourced regexes are
// validated earlier, during generation, where a bad character class is
// recorded in a *GrammarErrors instead.
func NewRegex(pattern string) *Matcher {
	anchored := "^(?:" + pattern + ")"
	re, err := regexp.Compile(anchored)
	if err != nil {
		panic(fmt.Sprintf("peg: invalid regex %q: %v", pattern, err))
	}
	return &Matcher{Kind: KindRegex, Pattern: re, Source: pattern}
}

// compileRegex is the fallible counterpart of NewRegex, used wherever a
// regex comes from grammar source text and an invalid character class
// should surface as a grammar syntax error rather than a panic.
func compileRegex(pattern string) (*Matcher, error) {
	anchored := "^(?:" + pattern + ")"
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("invalid character class %q: %w", pattern, err)
	}
	return &Matcher{Kind: KindRegex, Pattern: re, Source: pattern}, nil
}

// dotMatcher matches any single character, including newlines.
func dotMatcher() *Matcher {
	return NewRegex("(?s:.)")
}

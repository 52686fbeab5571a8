// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token implements the format-string tokenizer/expander that
// drives pack/unpack/read (spec.md §4.4). The grammar and its
// comma-separated, comment-free token shape is modeled on the
// teacher's own miniature format-string language for tests,
// internal/testutil/bitgen.go in dsnet-compress: a small set of regexes
// split tokens, a leading "N*" decorates a repeat count, and invalid
// tokens are rejected eagerly rather than deferred to the consumer.
package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Token is one (name, length, value) triple from a format string.
// Length == -1 means the length was omitted; HasValue == false means the
// value was omitted.
type Token struct {
	Name     string
	Length   int
	Value    string
	HasValue bool
}

var (
	reGroup     = regexp.MustCompile(`(\d+)\s*\*\s*\(`)
	reFactor    = regexp.MustCompile(`^(\d+)\s*\*\s*(.+)$`)
	reLiteral   = regexp.MustCompile(`^0[xXoObB][0-9a-fA-F]*$`)
	reNameToken = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*([0-9]+)\s*)?(?:=\s*(.+))?$`)
	reStruct    = regexp.MustCompile(`^[<>@=](\d*[bBhHlLqQefd])+$`)
)

// Parse tokenizes a format string into a stretchy flag and a list of
// Tokens, per spec.md §4.4.
func Parse(format string) (stretchy bool, tokens []Token, err error) {
	expanded, err := expandGroups(format)
	if err != nil {
		return false, nil, err
	}
	parts := splitTopLevel(expanded)
	stretchyCount := 0
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		toks, err := parseOne(p)
		if err != nil {
			return false, nil, err
		}
		for _, t := range toks {
			if t.Length < 0 && !t.HasValue && t.Name != "pad" {
				stretchyCount++
			}
			tokens = append(tokens, t)
		}
	}
	if stretchyCount > 1 {
		return false, nil, fmt.Errorf("token: more than one stretchy token in format string")
	}
	return stretchyCount == 1, tokens, nil
}

// expandGroups repeatedly rewrites "N*(...)" groups into N literal,
// comma-joined copies of their contents, leftmost (outermost) group
// first; a nested group is copied along with its contents and expands
// on a later pass.
func expandGroups(s string) (string, error) {
	for {
		loc := reGroup.FindStringSubmatchIndex(s)
		if loc == nil {
			return s, nil
		}
		// Find the matching close paren for the '(' this match ended on.
		openPos := loc[1] - 1
		depth := 1
		closePos := -1
		for i := openPos + 1; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					closePos = i
				}
			}
			if closePos >= 0 {
				break
			}
		}
		if closePos < 0 {
			return "", fmt.Errorf("token: unbalanced parentheses in %q", s)
		}
		n, err := strconv.Atoi(s[loc[2]:loc[3]])
		if err != nil || n < 1 {
			return "", fmt.Errorf("token: invalid group factor in %q", s)
		}
		inner := s[openPos+1 : closePos]
		var rep []string
		for i := 0; i < n; i++ {
			rep = append(rep, inner)
		}
		replacement := strings.Join(rep, ",")
		s = s[:loc[0]] + replacement + s[closePos+1:]
	}
}

// splitTopLevel splits on commas; by the time this runs, expandGroups has
// already removed every parenthesis, so a plain split suffices.
func splitTopLevel(s string) []string {
	return strings.Split(s, ",")
}

func parseOne(tok string) ([]Token, error) {
	switch {
	case reStruct.MatchString(tok):
		return expandStruct(tok)
	case reLiteral.MatchString(tok):
		return []Token{literalToken(tok)}, nil
	default:
		return expandFactor(tok)
	}
}

func literalToken(tok string) Token {
	prefix := tok[:2]
	digits := tok[2:]
	switch strings.ToLower(prefix) {
	case "0x":
		return Token{Name: "hex", Length: len(digits) * 4, Value: digits, HasValue: true}
	case "0o":
		return Token{Name: "oct", Length: len(digits) * 3, Value: digits, HasValue: true}
	case "0b":
		return Token{Name: "bin", Length: len(digits), Value: digits, HasValue: true}
	}
	panic("token: unreachable literal prefix " + prefix)
}

// expandFactor handles an optional leading "N*" repeat decorator around a
// single name[:length][=value] token.
func expandFactor(tok string) ([]Token, error) {
	factor := 1
	body := tok
	if m := reFactor.FindStringSubmatch(tok); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("token: invalid factor in %q", tok)
		}
		factor, body = n, m[2]
	}
	t, err := parseNameToken(strings.TrimSpace(body))
	if err != nil {
		return nil, err
	}
	out := make([]Token, factor)
	for i := range out {
		out[i] = t
	}
	return out, nil
}

func parseNameToken(body string) (Token, error) {
	m := reNameToken.FindStringSubmatch(body)
	if m == nil {
		return Token{}, fmt.Errorf("token: invalid token %q", body)
	}
	t := Token{Name: strings.ToLower(m[1]), Length: -1}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Token{}, fmt.Errorf("token: invalid length in %q", body)
		}
		t.Length = n
	}
	if m[3] != "" {
		t.Value = m[3]
		t.HasValue = true
	}
	return t, nil
}

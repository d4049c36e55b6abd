// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontok

import (
	"fmt"

	"go4.org/mem"
)

// Collect tokenizes all of input and returns the resulting tokens, not
// including the final EOF. If the input contains a lexical error, Collect
// returns the tokens preceding the error, along with an error of concrete
// type [*SyntaxError].
func Collect(input string) ([]Token, error) {
	var out []Token
	t := New(input)
	for tok := range t.All() {
		switch tok.Kind {
		case EOF:
			return out, nil
		case Error:
			return out, newSyntaxError(t.input, tok.Pos)
		}
		out = append(out, tok)
	}
	return out, nil
}

// MustCollect is as Collect, but panics if input contains a lexical error.
func MustCollect(input string) []Token {
	toks, err := Collect(input)
	if err != nil {
		panic(fmt.Sprintf("MustCollect: %v", err))
	}
	return toks
}

// Reason classifies a lexical error.
type Reason byte

// Constants defining the valid Reason values.
const (
	UnrecognizedCharacter Reason = iota + 1 // no token begins with this character
	UnterminatedString                      // end of input inside a string
	MalformedKeyword                        // not exactly true, false, or null
)

var reasonStr = [...]string{
	UnrecognizedCharacter: "unrecognized character",
	UnterminatedString:    "unterminated string",
	MalformedKeyword:      "malformed keyword",
}

func (r Reason) String() string {
	if r == 0 || int(r) >= len(reasonStr) {
		return fmt.Sprintf("Reason(%d)", r)
	}
	return reasonStr[r]
}

// SyntaxError is the concrete type of errors reported for lexically invalid
// input by Collect.
type SyntaxError struct {
	Offset   int     // the offset of the Error token, 0-based
	Location LineCol // the line and column of Offset
	Reason   Reason
	Char     byte // the input byte at Offset, or 0 at end of input
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Reason == UnterminatedString {
		return fmt.Sprintf("at %s: %v (offset %d)", s.Location, s.Reason, s.Offset)
	}
	return fmt.Sprintf("at %s: %v %q (offset %d)", s.Location, s.Reason, s.Char, s.Offset)
}

// NewSyntaxError classifies the Error token reported at offset of input.
// It is meant for callers that drive a Tokenizer directly and want the same
// diagnostics that Collect reports.
func NewSyntaxError(input []byte, offset int) *SyntaxError {
	return newSyntaxError(mem.B(input), offset)
}

// newSyntaxError classifies an error at offset from the input byte there:
// the tokenizer stops at the end of input only inside a string, and stops
// without advancing at a bad keyword or an unrecognized character.
func newSyntaxError(input mem.RO, offset int) *SyntaxError {
	serr := &SyntaxError{Offset: offset, Location: lineColOf(input, offset)}
	if offset < input.Len() {
		serr.Char = input.At(offset)
	}
	switch serr.Char {
	case 0:
		serr.Reason = UnterminatedString
	case 't', 'f', 'n':
		serr.Reason = MalformedKeyword
	default:
		serr.Reason = UnrecognizedCharacter
	}
	return serr
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontok

import (
	"github.com/creachadair/jsontok/internal/escape"

	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	None         Kind = iota // no token
	LeftBrace                // left brace "{"
	RightBrace               // right brace "}"
	LeftBracket              // left square bracket "["
	RightBracket             // right square bracket "]"
	Colon                    // colon ":"
	Comma                    // comma ","
	String                   // quoted string
	Number                   // number
	True                     // constant: true
	False                    // constant: false
	Null                     // constant: null
	EOF                      // end of input
	Error                    // lexical error
)

// Names are indexed by the Kind constants; keep this table in sync with them.
var kindStr = [...]string{
	None:         "TOKEN_NONE",
	LeftBrace:    "TOKEN_LEFT_BRACE",
	RightBrace:   "TOKEN_RIGHT_BRACE",
	LeftBracket:  "TOKEN_LEFT_BRACKET",
	RightBracket: "TOKEN_RIGHT_BRACKET",
	Colon:        "TOKEN_COLON",
	Comma:        "TOKEN_COMMA",
	String:       "TOKEN_STRING",
	Number:       "TOKEN_NUMBER",
	True:         "TOKEN_TRUE",
	False:        "TOKEN_FALSE",
	Null:         "TOKEN_NULL",
	EOF:          "TOKEN_EOF",
	Error:        "TOKEN_ERROR",
}

// String returns the display name of k. Values outside the enumeration
// report "UNKNOWN_TOKEN".
func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "UNKNOWN_TOKEN"
	}
	return kindStr[k]
}

// hasValue reports whether tokens of kind k carry a value.
func (k Kind) hasValue() bool { return k == String || k == Number }

// A Token is a single lexical token produced by a Tokenizer.
type Token struct {
	Kind Kind

	// Value is the text of a String or Number token, and nil for all other
	// kinds. The value of a string is the raw text between its quotes, with
	// escape sequences left as written. Value is owned by the caller.
	Value []byte

	// Span is the range of input consumed by the token. For a string this
	// includes the quotation marks.
	Span
}

// HasValue reports whether t currently holds a value.
func (t Token) HasValue() bool { return t.Value != nil }

// Release discards the value of t, if any. It is safe to call Release more
// than once.
func (t *Token) Release() { t.Value = nil }

// Unquote decodes the escape sequences in the value of a String token.
// For any other kind of token, or a token whose value has been released,
// Unquote returns nil.
func (t Token) Unquote() ([]byte, error) {
	if t.Kind != String || t.Value == nil {
		return nil, nil
	}
	return escape.Unquote(mem.B(t.Value))
}

func (t Token) String() string {
	if !t.Kind.hasValue() || t.Value == nil {
		return t.Kind.String()
	}
	if t.Kind == String {
		// N.B. This quotes the raw value, so escapes in it are doubled.
		return t.Kind.String() + `("` + string(escape.Quote(mem.B(t.Value))) + `")`
	}
	return t.Kind.String() + "(" + string(t.Value) + ")"
}

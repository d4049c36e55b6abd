// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontok

import (
	"iter"
	"strings"

	"go4.org/mem"
)

// A Tokenizer reads lexical tokens from an input buffer. Each call to Next
// advances the tokenizer past the next token and returns it.
//
// A Tokenizer does not modify its input, so several tokenizers may scan the
// same buffer concurrently. A single Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	input mem.RO
	pos   int                  // current offset in input
	trace func(string, ...any) // diagnostic sink, or nil
	tbuf  [][]byte             // allocation pool for token values
}

// New constructs a tokenizer that reads tokens from input.
func New(input string) *Tokenizer { return &Tokenizer{input: mem.S(input)} }

// NewBytes constructs a tokenizer that reads tokens from input.
// The caller must not modify input while the tokenizer is in use.
func NewBytes(input []byte) *Tokenizer { return &Tokenizer{input: mem.B(input)} }

// Reset discards the state of t and points it at the start of input.
// Token values already returned by t remain valid.
func (t *Tokenizer) Reset(input string) { t.input, t.pos = mem.S(input), 0 }

// ResetBytes discards the state of t and points it at the start of input.
// Token values already returned by t remain valid.
func (t *Tokenizer) ResetBytes(input []byte) { t.input, t.pos = mem.B(input), 0 }

// Pos returns the current offset of t in its input.
func (t *Tokenizer) Pos() int { return t.pos }

// SetTrace installs f to receive a printf-style trace of the decisions made
// by t while scanning. If f == nil, tracing is disabled.
// Tracing does not affect which tokens are produced.
func (t *Tokenizer) SetTrace(f func(format string, args ...any)) { t.trace = f }

// Next scans and returns the next token of the input.
//
// At the end of the input, Next returns an EOF token without moving the
// cursor, so that further calls also return EOF. A NUL byte in the input is
// treated as the end of input.
//
// If the input is not lexically valid at the cursor, Next returns an Error
// token. Error tokens do not carry a value, and the cursor does not move
// past the point of failure. For a bad keyword or an unrecognized character
// the cursor stays put, so calling Next again returns the same Error. For an
// unterminated string the cursor is left at the end of input, so calling Next
// again returns EOF.
func (t *Tokenizer) Next() Token {
	t.skipSpace()

	ch := t.at(t.pos)
	if t.trace != nil {
		t.trace("current char %q at offset %d", ch, t.pos)
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		start := t.pos
		t.pos++
		return t.token(k, start)
	}

	switch ch {
	case 0:
		return t.token(EOF, t.pos)
	case '"':
		return t.scanString()

	// Handle constants: true, false, null
	case 't':
		return t.scanName(True, "true")
	case 'f':
		return t.scanName(False, "false")
	case 'n':
		return t.scanName(Null, "null")
	}

	if isNumStart(ch) {
		return t.scanNumber()
	}
	return t.fail("unrecognized character")
}

// All returns an iterator over the remaining tokens of t. The sequence ends
// after the first EOF or Error token, which is included.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := t.Next()
			if !yield(tok) || tok.Kind == EOF || tok.Kind == Error {
				return
			}
		}
	}
}

func (t *Tokenizer) skipSpace() {
	for isSpace(t.at(t.pos)) {
		if t.trace != nil {
			t.trace("skipping whitespace at offset %d", t.pos)
		}
		t.pos++
	}
}

func (t *Tokenizer) scanString() Token {
	start := t.pos
	t.pos++ // opening quote
	for {
		switch t.at(t.pos) {
		case 0:
			return t.fail("unterminated string")
		case '"':
			t.pos++
			return t.token(String, start)
		case '\\':
			// Skip the escaped byte without checking it, so that \" does not
			// end the string. The escape cannot run past the end of input.
			if t.trace != nil {
				t.trace("escape at offset %d", t.pos)
			}
			t.pos++
			if t.at(t.pos) != 0 {
				t.pos++
			}
		default:
			t.pos++
		}
	}
}

// scanNumber consumes an optional sign, a run of digits, and an optional
// fraction. Either digit run may be empty.
func (t *Tokenizer) scanNumber() Token {
	start := t.pos
	if t.at(t.pos) == '-' {
		t.pos++
	}
	t.skipDigits()
	if t.at(t.pos) == '.' {
		t.pos++
		t.skipDigits()
	}
	return t.token(Number, start)
}

func (t *Tokenizer) skipDigits() {
	for isDigit(t.at(t.pos)) {
		t.pos++
	}
}

func (t *Tokenizer) scanName(k Kind, want string) Token {
	if !mem.HasPrefix(t.input.SliceFrom(t.pos), mem.S(want)) {
		return t.fail("malformed constant")
	}
	start := t.pos
	t.pos += len(want)
	return t.token(k, start)
}

// at returns the byte at offset i of the input, or 0 if i is past the end.
func (t *Tokenizer) at(i int) byte {
	if i >= t.input.Len() {
		return 0
	}
	return t.input.At(i)
}

// token constructs a token of kind k spanning from start to the cursor.
// String and Number tokens get a copy of their text.
func (t *Tokenizer) token(k Kind, start int) Token {
	tok := Token{Kind: k, Span: Span{Pos: start, End: t.pos}}
	switch k {
	case String:
		tok.Value = t.copyOf(t.input.Slice(start+1, t.pos-1))
	case Number:
		tok.Value = t.copyOf(t.input.Slice(start, t.pos))
	}
	if t.trace != nil {
		t.trace("%v at offset %d", tok, start)
	}
	return tok
}

// fail returns an Error token at the cursor.
func (t *Tokenizer) fail(reason string) Token {
	if t.trace != nil {
		t.trace("%v at offset %d: %s", Error, t.pos, reason)
	}
	return Token{Kind: Error, Span: Span{Pos: t.pos, End: t.pos}}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LeftBrace, RightBrace, LeftBracket, RightBracket, Colon, Comma}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return None, false
}

// copyOf returns a copy of text. Small values are packed into shared blocks
// to reduce allocation; each copy is capped so that appending to it cannot
// overwrite its neighbours. The result is never nil.
func (t *Tokenizer) copyOf(text mem.RO) []byte {
	const minBlockSlop = 4
	const smallSizeFraction = 16
	const bufBlockBytes = 16384

	// For values bigger than smallSizeFraction of the block size, don't bother
	// batching, make an outright copy.
	n := text.Len()
	if n >= bufBlockBytes/smallSizeFraction {
		return mem.Append(make([]byte, 0, n), text)
	}

	// Look for a block with space enough to hold a copy of text.
	i := 0
	for i < len(t.tbuf) {
		if len(t.tbuf[i])+n <= cap(t.tbuf[i]) {
			// There is room in this block.
			break
		} else if cap(t.tbuf[i])-len(t.tbuf[i]) < minBlockSlop {
			// There is no room in this block, and it is nearly-enough full.
			// Allocate a fresh block at this location and release the old one.
			// The old block will be retained until all its tokens are released.
			t.tbuf[i] = make([]byte, 0, bufBlockBytes)
			break
		}
		i++
	}
	if i == len(t.tbuf) {
		// No block had room; add a new empty one to the arena.
		t.tbuf = append(t.tbuf, make([]byte, 0, bufBlockBytes))
	}
	p := len(t.tbuf[i])
	t.tbuf[i] = mem.Append(t.tbuf[i], text)
	return t.tbuf[i][p : p+n : p+n]
}

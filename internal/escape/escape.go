// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string values.
//
// The tokenizer reports string values exactly as written. This package
// converts between that raw form and the decoded text.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote when the input ends in the middle of an
// escape sequence.
var ErrIncomplete = errors.New("incomplete escape sequence")

// shortEsc maps the escaped letter of a two-byte escape to its value.
var shortEsc = [256]byte{
	'"': '"', '\\': '\\', '/': '/',
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

// controlEsc maps a control character to its two-byte escape letter, if any.
var controlEsc = [' ']byte{
	'\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't',
}

const hexDigit = "0123456789abcdef"

// Quote encodes src so it can be placed between double quotation marks in a
// JSON string. Quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = appendU4(buf, r)
			}
		case r == utf8.RuneError || r == '\u2028' || r == '\u2029':
			// Invalid encodings, and separators some JavaScript parsers reject.
			buf = appendU4(buf, r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}

func appendU4(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
}

// Unquote decodes the raw text of a JSON string value. The input must have
// the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// UTF-16 surrogate pair written as two \u escapes is combined into a single
// rune. Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports ErrIncomplete for an escape sequence truncated by the end of src.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if c != 'u' {
			if v := shortEsc[c]; v != 0 {
				dec = append(dec, v)
			} else {
				dec = utf8.AppendRune(dec, utf8.RuneError)
			}
			continue
		}

		r, ok, err := readU4(src)
		if err != nil {
			return nil, err
		}
		src = src.SliceFrom(4)
		if ok && utf16.IsSurrogate(r) {
			// Try to pair a leading surrogate with a following \u escape.
			if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if r2, ok2, _ := readU4(src.SliceFrom(2)); ok2 {
					if p := utf16.DecodeRune(r, r2); p != utf8.RuneError {
						dec = utf8.AppendRune(dec, p)
						src = src.SliceFrom(6)
						continue
					}
				}
			}
			ok = false
		}
		if !ok {
			r = utf8.RuneError
		}
		dec = utf8.AppendRune(dec, r)
	}
}

// readU4 parses the four hex digits that follow "\u" at the front of src.
// It reports ok == false if the digits are not all valid hex.
func readU4(src mem.RO) (rune, bool, error) {
	if src.Len() < 4 {
		return 0, false, ErrIncomplete
	}
	var v rune
	for i := range 4 {
		d := hexVal(src.At(i))
		if d < 0 {
			return 0, false, nil
		}
		v = v<<4 | rune(d)
	}
	return v, true, nil
}

func hexVal(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsontok_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsontok"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind jsontok.Kind
		want string
	}{
		{jsontok.None, "TOKEN_NONE"},
		{jsontok.LeftBrace, "TOKEN_LEFT_BRACE"},
		{jsontok.RightBrace, "TOKEN_RIGHT_BRACE"},
		{jsontok.LeftBracket, "TOKEN_LEFT_BRACKET"},
		{jsontok.RightBracket, "TOKEN_RIGHT_BRACKET"},
		{jsontok.Colon, "TOKEN_COLON"},
		{jsontok.Comma, "TOKEN_COMMA"},
		{jsontok.String, "TOKEN_STRING"},
		{jsontok.Number, "TOKEN_NUMBER"},
		{jsontok.True, "TOKEN_TRUE"},
		{jsontok.False, "TOKEN_FALSE"},
		{jsontok.Null, "TOKEN_NULL"},
		{jsontok.EOF, "TOKEN_EOF"},
		{jsontok.Error, "TOKEN_ERROR"},
		{jsontok.Error + 1, "UNKNOWN_TOKEN"},
		{255, "UNKNOWN_TOKEN"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	released := str("gone")
	released.Release()

	tests := []struct {
		tok  jsontok.Token
		want string
	}{
		{comma, "TOKEN_COMMA"},
		{eof, "TOKEN_EOF"},
		{num("-1.5"), "TOKEN_NUMBER(-1.5)"},
		{str(""), `TOKEN_STRING("")`},
		{str("a b"), `TOKEN_STRING("a b")`},
		{str(`ab\"cd`), `TOKEN_STRING("ab\\\"cd")`},
		{released, "TOKEN_STRING"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("String: got %#q, want %#q", got, test.want)
		}
	}
}

func TestTokenRelease(t *testing.T) {
	toks := scanAll(`"s" 25 "" true`)
	for _, tok := range toks {
		want := tok.Kind == jsontok.String || tok.Kind == jsontok.Number
		if got := tok.HasValue(); got != want {
			t.Errorf("%v HasValue: got %v, want %v", tok, got, want)
		}
		tok.Release()
		if tok.HasValue() {
			t.Errorf("%v HasValue after Release: got true", tok)
		}
		tok.Release() // second release is harmless
		if tok.Value != nil {
			t.Errorf("%v Value after Release: got %q, want nil", tok, tok.Value)
		}
	}
}

func TestTokenUnquote(t *testing.T) {
	const input = `"a\tb c\n" 15 "x\"y"`
	toks := scanAll(input)

	tests := []struct {
		tok  jsontok.Token
		want string
	}{
		{toks[0], "a\tb c\n"},
		{toks[1], ""},
		{toks[2], `x"y`},
	}
	for _, test := range tests {
		got, err := test.tok.Unquote()
		if err != nil {
			t.Errorf("Unquote %v: unexpected error: %v", test.tok, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote %v: got %#q, want %#q", test.tok, got, test.want)
		}
	}

	// The raw value is not modified by decoding.
	if got, want := string(toks[0].Value), `a\tb c\n`; got != want {
		t.Errorf("Raw value: got %#q, want %#q", got, want)
	}
}

func TestCollect(t *testing.T) {
	got, err := jsontok.Collect(`{"a":1,"b":[true,false,null]}`)
	if err != nil {
		t.Fatalf("Collect: unexpected error: %v", err)
	}
	want := []jsontok.Token{
		lbrace, str("a"), colon, num("1"), comma, str("b"), colon,
		lsq, vtrue, comma, vfalse, comma, vnull, rsq, rbrace,
	}
	if diff := cmp.Diff(want, got, ignoreSpan); diff != "" {
		t.Errorf("Collect (-want, +got):\n%s", diff)
	}

	if got, err := jsontok.Collect("   "); err != nil || len(got) != 0 {
		t.Errorf("Collect(space): got %v, %v; want no tokens, no error", got, err)
	}
}

func TestCollect_errors(t *testing.T) {
	tests := []struct {
		input string
		want  []jsontok.Token
		serr  jsontok.SyntaxError
		msg   string
	}{
		{`[1, tru]`, []jsontok.Token{lsq, num("1"), comma}, jsontok.SyntaxError{
			Offset:   4,
			Location: jsontok.LineCol{Line: 1, Column: 4},
			Reason:   jsontok.MalformedKeyword,
			Char:     't',
		}, `at 1:4: malformed keyword 't' (offset 4)`},

		{"{\n  \"a\": \"b", []jsontok.Token{lbrace, str("a"), colon}, jsontok.SyntaxError{
			Offset:   11,
			Location: jsontok.LineCol{Line: 2, Column: 9},
			Reason:   jsontok.UnterminatedString,
		}, `at 2:9: unterminated string (offset 11)`},

		{`[@]`, []jsontok.Token{lsq}, jsontok.SyntaxError{
			Offset:   1,
			Location: jsontok.LineCol{Line: 1, Column: 1},
			Reason:   jsontok.UnrecognizedCharacter,
			Char:     '@',
		}, `at 1:1: unrecognized character '@' (offset 1)`},
	}
	for _, test := range tests {
		got, err := jsontok.Collect(test.input)
		if diff := cmp.Diff(test.want, got, ignoreSpan); diff != "" {
			t.Errorf("Collect(%#q) tokens (-want, +got):\n%s", test.input, diff)
		}
		var serr *jsontok.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Collect(%#q): got error %v, want *SyntaxError", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.serr, *serr); diff != "" {
			t.Errorf("Collect(%#q) error (-want, +got):\n%s", test.input, diff)
		}
		if got := err.Error(); got != test.msg {
			t.Errorf("Collect(%#q) message: got %q, want %q", test.input, got, test.msg)
		}

		// The exported constructor agrees with Collect.
		if diff := cmp.Diff(serr, jsontok.NewSyntaxError([]byte(test.input), serr.Offset)); diff != "" {
			t.Errorf("NewSyntaxError (-want, +got):\n%s", diff)
		}
	}
}

func TestMustCollect(t *testing.T) {
	if got := jsontok.MustCollect("[null]"); len(got) != 3 {
		t.Errorf("MustCollect: got %d tokens, want 3", len(got))
	}
	mtest.MustPanic(t, func() { jsontok.MustCollect(`"unterminated`) })
	mtest.MustPanic(t, func() { jsontok.MustCollect(`nil`) })
}

func TestReasonString(t *testing.T) {
	for r, want := range map[jsontok.Reason]string{
		jsontok.UnrecognizedCharacter: "unrecognized character",
		jsontok.UnterminatedString:    "unterminated string",
		jsontok.MalformedKeyword:      "malformed keyword",
		0:                             "Reason(0)",
		99:                            "Reason(99)",
	} {
		if got := r.String(); got != want {
			t.Errorf("Reason(%d).String(): got %q, want %q", byte(r), got, want)
		}
	}
}

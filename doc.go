// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsontok implements a lexical tokenizer for JSON text.
//
// # Tokenizing
//
// The Tokenizer type converts an input buffer into a sequence of tokens on
// demand. Construct a tokenizer from a string or byte slice and call its Next
// method until it reports an EOF or Error token:
//
//	tz := jsontok.New(input)
//	for {
//	   tok := tz.Next()
//	   if tok.Kind == jsontok.EOF || tok.Kind == jsontok.Error {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The All method wraps the same loop as an iterator. The EOF or Error token
// that ends the input is the last value of the sequence.
//
// # Tokens
//
// Each Token has a Kind. String and Number tokens also carry a Value, which
// is a copy of their text owned by the caller. A String value is the text
// between the quotation marks exactly as written, so escape sequences are not
// decoded; use the Unquote method to decode them. Call Release on a token to
// drop its value once it is no longer needed.
//
// The tokenizer checks lexical shape only. It does not check that brackets
// balance or that object keys and values alternate, and it accepts numbers
// with empty digit runs, such as "-" or "1.".
//
// # Errors
//
// Lexical errors are reported as a token of kind Error, positioned where
// scanning failed. The tokenizer does not skip past a bad input, so a caller
// that gets an Error token should stop. Calling Next again does not resume
// scanning: it repeats the Error, or reports EOF if an unterminated string
// already reached the end of input. Collect tokenizes a whole input and
// reports errors as a *SyntaxError describing the failure:
//
//	toks, err := jsontok.Collect(input)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
package jsontok

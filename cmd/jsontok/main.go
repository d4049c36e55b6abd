// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jsontok prints the lexical tokens of JSON input files.
//
// Usage:
//
//	jsontok [flags] [file ...]
//
// Each token is printed on a line as its offset, kind, and value (if any).
// With no file arguments, or a file named "-", jsontok reads standard input.
//
// Settings may also be read from a TOML file given by -config:
//
//	trace = true
//	jwcc = true
//	spans = false
//
// Flags given on the command line override the file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/creachadair/jsontok"
	"github.com/tailscale/hujson"
)

var (
	configFile = flag.String("config", "", "Read settings from this TOML file")
	doTrace    = flag.Bool("v", false, "Trace tokenizer decisions to stderr")
	doJWCC     = flag.Bool("jwcc", false, "Accept JWCC input (comments and trailing commas)")
	doSpans    = flag.Bool("spans", false, "Print the start and end offset of each token")
)

// settings are the options that control a run.
type settings struct {
	Trace bool `toml:"trace"`
	JWCC  bool `toml:"jwcc"`
	Spans bool `toml:"spans"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jsontok: ")

	cfg, err := loadSettings(*configFile, flagOverrides())
	if err != nil {
		log.Fatalf("Loading settings: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, name := range args {
		input, err := readInput(name)
		if err != nil {
			w.Flush()
			log.Fatalf("Read input: %v", err)
		}
		if err := run(w, name, input, cfg, log.Printf); err != nil {
			w.Flush()
			log.Fatal(err)
		}
	}
}

// flagOverrides returns a function that applies the flags explicitly set on
// the command line to a settings value.
func flagOverrides() func(*settings) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return func(s *settings) {
		if set["v"] {
			s.Trace = *doTrace
		}
		if set["jwcc"] {
			s.JWCC = *doJWCC
		}
		if set["spans"] {
			s.Spans = *doSpans
		}
	}
}

// loadSettings reads settings from the TOML file at path, if path != "",
// and then applies override.
func loadSettings(path string, override func(*settings)) (settings, error) {
	var cfg settings
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config %q: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) != 0 {
			return cfg, fmt.Errorf("config %q: unknown setting %q", path, keys[0].String())
		}
	}
	if override != nil {
		override(&cfg)
	}
	return cfg, nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// run tokenizes input and writes one line per token to w. The name labels
// the input in error messages. If cfg.Trace is set, trace output goes to logf.
func run(w io.Writer, name string, input []byte, cfg settings, logf func(string, ...any)) error {
	if cfg.JWCC {
		// Standardize replaces comments and trailing commas with spaces, so
		// the offsets of the remaining tokens are unchanged.
		std, err := hujson.Standardize(input)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		input = std
	}

	tz := jsontok.NewBytes(input)
	if cfg.Trace {
		tz.SetTrace(logf)
	}
	for tok := range tz.All() {
		switch tok.Kind {
		case jsontok.EOF:
			return nil
		case jsontok.Error:
			return fmt.Errorf("%s: %w", name, jsontok.NewSyntaxError(input, tok.Pos))
		}

		var err error
		if cfg.Spans {
			_, err = fmt.Fprintf(w, "%d-%d\t%v", tok.Pos, tok.End, tok.Kind)
		} else {
			_, err = fmt.Fprintf(w, "%d\t%v", tok.Pos, tok.Kind)
		}
		if err == nil && tok.HasValue() {
			_, err = fmt.Fprintf(w, "\t%s", tok.Value)
		}
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
		if err != nil {
			return err
		}
		tok.Release()
	}
	return nil
}

// Command freightdesk-extract runs inquiry extraction over text from a file or stdin
// and prints the result as JSON
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"freightdesk/internal/modkit"
	"freightdesk/internal/modkit/module"
	"freightdesk/internal/platform/config"
	"freightdesk/internal/platform/logger"

	"freightdesk/internal/services/api/inquiry/domain"
	inquirymod "freightdesk/internal/services/api/inquiry/module"

	"github.com/rs/zerolog"
)

func main() {
	logger.Init(logger.FromEnv())
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("freightdesk-extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		variant = fs.String("variant", "", "fcl or lcl; empty uses CORE_INQUIRY_DEFAULT_VARIANT")
		file    = fs.String("file", "", "read the inquiry from this file instead of stdin")
		vocab   = fs.String("vocab", "", "vocabulary file overriding the embedded pack")
		perLine = fs.Bool("lines", false, "treat each non-empty line as its own inquiry and emit NDJSON")
		pretty  = fs.Bool("pretty", false, "indent the JSON output")
		verbose = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lvl := zerolog.WarnLevel
	if *verbose {
		lvl = zerolog.DebugLevel
	}
	l := zerolog.New(stderr).Level(lvl).With().Timestamp().Str("cmd", "freightdesk-extract").Logger()

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			l.Error().Err(err).Str("file", *file).Msg("open input")
			return 1
		}
		defer f.Close()
		in = f
	}

	m, err := inquirymod.New(modkit.Deps{Log: &l, Cfg: config.New()}, inquirymod.Options{VocabPath: *vocab})
	if err != nil {
		l.Error().Err(err).Msg("build inquiry module")
		return 1
	}
	svc := module.MustPortsOf[inquirymod.Ports](m).Service

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	ctx := logger.WithLogger(context.Background(), &l)
	ctx = logger.WithRequest(ctx, "cli")

	extract := func(text string) error {
		res, err := svc.Extract(ctx, domain.ExtractInput{Text: text, Variant: *variant})
		if err != nil {
			return err
		}
		return enc.Encode(res)
	}

	if !*perLine {
		b, err := io.ReadAll(in)
		if err != nil {
			l.Error().Err(err).Msg("read input")
			return 1
		}
		if err := extract(string(b)); err != nil {
			fmt.Fprintln(stderr, "extract:", err)
			return 1
		}
		return 0
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64<<10), 1<<20)
	failed := 0
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := extract(text); err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", n, err)
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		l.Error().Err(err).Msg("read input")
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

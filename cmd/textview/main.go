// Command textview applies character-sequence transformations to text from
// files or standard input: line splitting, margin stripping, literal
// splitting and printf-style formatting.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/text/language"

	"github.com/dshills/textview"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Options holds the parsed command-line configuration.
type Options struct {
	ConfigPath string
	Ops        string
	MarginChar string
	SplitChars string
	Prefix     string
	Suffix     string
	Repeat     int
	FormatArgs string
	Locale     string
	JSON       bool
	Files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	pipeline, asJSON, err := buildPipeline(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	input, err := readInput(opts.Files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	views := []textview.View{textview.FromString(input)}
	for _, op := range pipeline {
		views, err = op.Apply(views)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := writeOutput(os.Stdout, views, asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildPipeline resolves the pipeline from the config file or flags; the
// config file wins when both are given.
func buildPipeline(opts Options) ([]Operation, bool, error) {
	if opts.ConfigPath != "" {
		cfg, err := LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, false, err
		}
		if len(cfg.Pipeline) == 0 {
			return nil, false, fmt.Errorf("config %s defines no pipeline", opts.ConfigPath)
		}
		return cfg.Pipeline, cfg.JSON || opts.JSON, nil
	}

	pipeline, err := ParsePipeline(opts.Ops, opts)
	if err != nil {
		return nil, false, err
	}
	return pipeline, opts.JSON, nil
}

// readInput concatenates the given files, or reads stdin when none are given.
func readInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var all []byte
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		all = append(all, data...)
	}
	return string(all), nil
}

// writeOutput prints each fragment on its own line, or as a pretty-printed
// JSON document when asJSON is set.
func writeOutput(w io.Writer, views []textview.View, asJSON bool) error {
	if !asJSON {
		for _, v := range views {
			if _, err := fmt.Fprintln(w, v.String()); err != nil {
				return err
			}
		}
		return nil
	}

	doc := `{"fragments":[]}`
	for _, v := range views {
		var err error
		doc, err = sjson.Set(doc, "fragments.-1", v.String())
		if err != nil {
			return fmt.Errorf("build JSON: %w", err)
		}
	}
	doc, err := sjson.Set(doc, "count", len(views))
	if err != nil {
		return fmt.Errorf("build JSON: %w", err)
	}
	_, err = w.Write(pretty.Pretty([]byte(doc)))
	return err
}

// parseLocale resolves a BCP 47 tag such as "de" or "en-US".
func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", s, err)
	}
	return tag, nil
}

func parseFlags() Options {
	var opts Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to TOML pipeline file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to TOML pipeline file (shorthand)")
	flag.StringVar(&opts.Ops, "ops", "", "Comma-separated operation pipeline")
	flag.StringVar(&opts.MarginChar, "margin-char", "|", "Margin character for strip-margin")
	flag.StringVar(&opts.SplitChars, "split-chars", "", "Separator characters for split")
	flag.StringVar(&opts.Prefix, "prefix", "", "Literal for strip-prefix")
	flag.StringVar(&opts.Suffix, "suffix", "", "Literal for strip-suffix")
	flag.IntVar(&opts.Repeat, "repeat", 1, "Count for repeat")
	flag.StringVar(&opts.FormatArgs, "args", "", "JSON array of arguments for format")
	flag.StringVar(&opts.Locale, "locale", "", "BCP 47 locale for format")
	flag.BoolVar(&opts.JSON, "json", false, "Emit fragments as a JSON document")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textview - character-sequence transformations\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textview [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nOperations: lines, lines-with-seps, strip-line-end, strip-margin,\n")
		fmt.Fprintf(os.Stderr, "            split, capitalize, strip-prefix, strip-suffix, repeat, format\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textview -ops strip-margin doc.txt        Strip | margins\n")
		fmt.Fprintf(os.Stderr, "  textview -ops lines,capitalize            Capitalize each stdin line\n")
		fmt.Fprintf(os.Stderr, "  textview -ops split -split-chars , -json  Split stdin on commas\n")
		fmt.Fprintf(os.Stderr, "  textview -c pipeline.toml notes.txt       Run a configured pipeline\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("textview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts
}

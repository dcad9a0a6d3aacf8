package main

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/dshills/textview"
)

// Operation is one step of the transformation pipeline.
type Operation struct {
	Name   string `toml:"name"`
	Char   string `toml:"char,omitempty"`   // margin character or separator set
	Value  string `toml:"value,omitempty"`  // prefix/suffix literal
	Count  int    `toml:"count,omitempty"`  // repeat count
	Args   string `toml:"args,omitempty"`   // JSON array of format arguments
	Locale string `toml:"locale,omitempty"` // BCP 47 tag for format
}

// Config is the TOML pipeline file decoded by -config.
type Config struct {
	JSON     bool        `toml:"json"`
	Pipeline []Operation `toml:"pipeline"`
}

// LoadConfig reads and decodes a TOML pipeline file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply runs one operation over every view, expanding line and split
// operations into their fragments.
func (op Operation) Apply(views []textview.View) ([]textview.View, error) {
	switch op.Name {
	case "lines":
		var out []textview.View
		for _, v := range views {
			it := v.Lines()
			for it.Next() {
				out = append(out, it.View())
			}
		}
		return out, nil

	case "lines-with-seps":
		var out []textview.View
		for _, v := range views {
			it := v.LinesWithSeparators()
			for it.Next() {
				out = append(out, it.View())
			}
		}
		return out, nil

	case "strip-line-end":
		return mapViews(views, textview.View.StripLineEnd), nil

	case "strip-margin":
		margin := textview.DefaultMarginChar
		if units := textview.FromString(op.Char).Units(); len(units) > 0 {
			margin = units[0]
		}
		return mapViews(views, func(v textview.View) textview.View {
			return v.StripMarginWith(margin)
		}), nil

	case "split":
		seps := textview.FromString(op.Char).Units()
		if len(seps) == 0 {
			return nil, fmt.Errorf("split: no separator given")
		}
		var out []textview.View
		for _, v := range views {
			frags, err := v.SplitOnAny(seps...)
			if err != nil {
				return nil, fmt.Errorf("split: %w", err)
			}
			out = append(out, frags...)
		}
		return out, nil

	case "capitalize":
		return mapViews(views, textview.View.Capitalize), nil

	case "strip-prefix":
		p := textview.FromString(op.Value)
		return mapViews(views, func(v textview.View) textview.View {
			return v.StripPrefix(p)
		}), nil

	case "strip-suffix":
		s := textview.FromString(op.Value)
		return mapViews(views, func(v textview.View) textview.View {
			return v.StripSuffix(s)
		}), nil

	case "repeat":
		return mapViews(views, func(v textview.View) textview.View {
			return v.Repeat(op.Count)
		}), nil

	case "format":
		args, err := formatArgs(op.Args)
		if err != nil {
			return nil, err
		}
		if op.Locale != "" {
			tag, err := parseLocale(op.Locale)
			if err != nil {
				return nil, err
			}
			return mapViews(views, func(v textview.View) textview.View {
				return v.FormatLocale(tag, args...)
			}), nil
		}
		return mapViews(views, func(v textview.View) textview.View {
			return v.Format(args...)
		}), nil

	default:
		return nil, fmt.Errorf("unknown operation %q", op.Name)
	}
}

func mapViews(views []textview.View, f func(textview.View) textview.View) []textview.View {
	out := make([]textview.View, len(views))
	for i, v := range views {
		out[i] = f(v)
	}
	return out
}

// formatArgs decodes a JSON array of formatting arguments. Numbers decode as
// int64 when integral so %d verbs work.
func formatArgs(raw string) ([]any, error) {
	if raw == "" {
		return nil, nil
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("format args must be a JSON array, got %q", raw)
	}
	var args []any
	for _, el := range parsed.Array() {
		switch el.Type {
		case gjson.Number:
			f := el.Float()
			if f == float64(int64(f)) {
				args = append(args, el.Int())
			} else {
				args = append(args, f)
			}
		case gjson.True, gjson.False:
			args = append(args, el.Bool())
		default:
			args = append(args, el.String())
		}
	}
	return args, nil
}

// ParsePipeline builds a pipeline from a comma-separated op list plus the
// per-op flag values.
func ParsePipeline(ops string, opts Options) ([]Operation, error) {
	var pipeline []Operation
	for _, name := range strings.Split(ops, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		op := Operation{Name: name}
		switch name {
		case "lines", "lines-with-seps", "strip-line-end", "capitalize":
		case "strip-margin":
			op.Char = opts.MarginChar
		case "split":
			op.Char = opts.SplitChars
		case "strip-prefix":
			op.Value = opts.Prefix
		case "strip-suffix":
			op.Value = opts.Suffix
		case "repeat":
			op.Count = opts.Repeat
		case "format":
			op.Args = opts.FormatArgs
			op.Locale = opts.Locale
		default:
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		pipeline = append(pipeline, op)
	}
	if len(pipeline) == 0 {
		return nil, fmt.Errorf("no operations given")
	}
	return pipeline, nil
}

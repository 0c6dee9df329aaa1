// Package main is the entry point for the runetext command line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/runetext/internal/config"
	"github.com/dshills/runetext/internal/script"
	"github.com/dshills/runetext/internal/ustring"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	op         string
	start      int
	length     int
	needle     string
	delim      string
	base       int
	baseSet    bool
	precision  int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, args := parseFlags()

	// Settings choose the ambient locale; everything below reads it
	// through the collate defaults.
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load settings: %v\n", err)
			return 1
		}
		settings = loaded
	}
	if err := settings.Apply(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to apply settings: %v\n", err)
		return 1
	}
	if !opts.baseSet && settings.IntegerBase != 0 {
		opts.base = settings.IntegerBase
	}
	opts.precision = settings.FloatPrecision

	if opts.scriptPath != "" {
		host := script.NewHost()
		defer host.Close()
		if err := host.RunFile(opts.scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	text := ustring.FromString(strings.Join(args, " "))
	if err := execute(opts, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(opts options, text *ustring.String) error {
	switch opts.op {
	case "size":
		fmt.Println(text.Size())

	case "width":
		fmt.Println(text.Width())

	case "substr":
		fmt.Println(text.Substr(opts.start, opts.length))

	case "find":
		fmt.Println(text.FindString(opts.needle))

	case "contains":
		needle := ustring.FromString(opts.needle)
		c, ok := needle.At(0)
		if !ok {
			return fmt.Errorf("contains requires a non-empty -needle")
		}
		fmt.Println(text.Contains(c))

	case "split":
		delim := ustring.FromString(opts.delim)
		c, ok := delim.At(0)
		if !ok {
			return fmt.Errorf("split requires a non-empty -delim")
		}
		for _, frag := range text.Split(c) {
			fmt.Println(frag)
		}

	case "int":
		v, ok := text.ToInt64()
		if !ok {
			return fmt.Errorf("%q is not an integer", text)
		}
		fmt.Println(v)

	case "float":
		v, ok := text.ToFloat64()
		if !ok {
			return fmt.Errorf("%q is not a number", text)
		}
		fmt.Println(ustring.NumberFloatFormat(v, 'g', opts.precision))

	case "number":
		v, ok := text.ToInt64()
		if !ok {
			return fmt.Errorf("%q is not an integer", text)
		}
		fmt.Println(ustring.NumberInBase(v, opts.base))

	default:
		return fmt.Errorf("unknown -op %q", opts.op)
	}
	return nil
}

func parseFlags() (options, []string) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to settings file (TOML or YAML)")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua script against the engine")
	flag.StringVar(&opts.op, "op", "size", "Operation: size, width, substr, find, contains, split, int, float, number")
	flag.IntVar(&opts.start, "start", 0, "Codepoint start index for substr")
	flag.IntVar(&opts.length, "len", 0, "Codepoint length for substr")
	flag.StringVar(&opts.needle, "needle", "", "Needle for find/contains")
	flag.StringVar(&opts.delim, "delim", "", "Delimiter character for split")
	flag.IntVar(&opts.base, "base", 10, "Base (2-36) for number")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("runetext %s (%s)\n", version, commit)
		os.Exit(0)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "base" {
			opts.baseSet = true
		}
	})

	return opts, flag.Args()
}

package main

import (
	"fmt"
	"os"

	"github.com/gopatchy/shl"
	"github.com/gopatchy/shl/internal/format"
	"github.com/gopatchy/shl/pkg/version"
	"github.com/jessevdk/go-flags"
)

type options struct {
	OutputPath *flags.Filename `short:"o" long:"output" description:"output file path"`
	DumpFormat *string         `short:"d" long:"dump" description:"dump the theme as a theme file instead of CSS" choice:"json" choice:"yaml" choice:"toml" choice:"properties"`
	Version    bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		ThemePath *flags.Filename `positional-arg-name:"themePath" required:"0" description:"theme file (default: built-in theme)"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
shl-css emits the stylesheet for the class names produced by shl.

Without a theme path it uses the built-in theme; --dump writes the theme
itself in a theme file format, as a starting point for editing.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	theme := shl.DefaultTheme()

	if opts.Positional.ThemePath != nil {
		theme, err = shl.LoadTheme(string(*opts.Positional.ThemePath))
		if err != nil {
			fatal(err)
		}
	}

	var output []byte

	if opts.DumpFormat != nil {
		f, err := format.Get(*opts.DumpFormat)
		if err != nil {
			fatal(err)
		}

		output, err = f.Marshal(map[string]string(theme))
		if err != nil {
			fatal(err)
		}
	} else {
		css, err := shl.Stylesheet(theme)
		if err != nil {
			fatal(err)
		}

		output = []byte(css)
	}

	if opts.OutputPath == nil {
		_, err = os.Stdout.Write(output)
	} else {
		err = os.WriteFile(string(*opts.OutputPath), output, 0o644)
	}

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

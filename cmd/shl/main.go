package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopatchy/shl"
	"github.com/gopatchy/shl/pkg/log"
	"github.com/gopatchy/shl/pkg/version"
	"github.com/jessevdk/go-flags"
)

type options struct {
	OutputPath  *flags.Filename `short:"o" long:"output" description:"output file path"`
	LineNumbers bool            `short:"n" long:"line-numbers" description:"number output lines"`
	NoPre       bool            `short:"P" long:"no-pre" description:"do not wrap output in <pre> tags"`
	TabWidth    int             `short:"t" long:"tabs" description:"spaces per tab; 0 keeps tabs" default:"4"`
	Syntax      string          `short:"s" long:"syntax" description:"shell dialect" choice:"bourne" choice:"bash" choice:"ksh" choice:"csh" choice:"zsh" default:"bourne"`
	ThemePath   *flags.Filename `long:"theme" description:"theme file for the embedded stylesheet"`
	Standalone  bool            `short:"S" long:"standalone" description:"emit a complete HTML page with embedded stylesheet"`
	Verbose     bool            `short:"v" long:"verbose" description:"enable verbose logging"`
	Version     bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		InputPaths []flags.Filename `positional-arg-name:"inputPath" required:"0" description:"input file path"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
shl converts shell script source to HTML with classed spans for CSS colorization.

With no input paths, shl reads from stdin. The stylesheet for the emitted
class names can be generated with shl-css.

Related tools:
* shl-css
* shl-mcp`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	pre := !opts.NoPre

	h, err := shl.New(&shl.Options{
		Pre:         &pre,
		LineNumbers: &opts.LineNumbers,
		Syntax:      &opts.Syntax,
		TabWidth:    &opts.TabWidth,
	})
	if err != nil {
		fatal(err)
	}

	var parts []string

	if len(opts.Positional.InputPaths) == 0 {
		out, err := h.ParseReader(os.Stdin)
		if err != nil {
			fatal(err)
		}

		parts = append(parts, out)
	}

	for _, path := range opts.Positional.InputPaths {
		fh, err := os.Open(string(path))
		if err != nil {
			fatal(err)
		}

		out, err := h.ParseReader(fh)
		fh.Close()

		if err != nil {
			fatal(fmt.Errorf("%s: %w", path, err))
		}

		parts = append(parts, out)
	}

	output := strings.Join(parts, "")

	if opts.Standalone {
		output, err = standalone(output, opts.ThemePath)
		if err != nil {
			fatal(err)
		}
	}

	if err := write(output, opts.OutputPath); err != nil {
		fatal(err)
	}
}

func standalone(body string, themePath *flags.Filename) (string, error) {
	theme := shl.DefaultTheme()

	if themePath != nil {
		var err error

		theme, err = shl.LoadTheme(string(*themePath))
		if err != nil {
			return "", err
		}
	}

	css, err := shl.Stylesheet(theme)
	if err != nil {
		return "", err
	}

	page := strings.Builder{}
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	page.WriteString(css)
	page.WriteString("</style>\n</head>\n<body>\n")
	page.WriteString(body)
	page.WriteString("</body>\n</html>\n")

	return page.String(), nil
}

func write(output string, path *flags.Filename) error {
	if path == nil {
		_, err := io.WriteString(os.Stdout, output)
		return err
	}

	return os.WriteFile(string(*path), []byte(output), 0o644)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// Command regexbuild builds a regular expression from a JSON or YAML recipe
// and prints it. Given input files, it prints the matches found in them
// instead, or the inputs with the matches removed.
//
// Usage:
//
//	regexbuild [flags] recipe [input...]
//
// The recipe and any input may be "-" to read stdin. Logging is configured
// from the environment, optionally through a .env file:
//
//	REGEXBUILD_LOG_LEVEL   debug, info, warn or error (default info)
//	REGEXBUILD_LOG_FORMAT  text or json (default text)
//	REGEXBUILD_LOG_PREFIX  prefix of builder trace lines (default RegexBuilder)
//	REGEXBUILD_TRACE       log every builder operation
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"go.dw1.io/regextoolbox/builder"
	"go.dw1.io/regextoolbox/recipe"
	"go.dw1.io/regextoolbox/regexp"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("regexbuild", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "recipe format, json or yaml (default: from the recipe file extension)")
	ignoreCase := fs.Bool("ignore-case", false, "build with the IgnoreCase option")
	multiline := fs.Bool("multiline", false, "build with the Multiline option")
	remove := fs.String("remove", "", "print inputs with matches removed: all, first or last")
	envFile := fs.String("env", "", "load environment from this .env file instead of ./.env")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] recipe [input...]\n\n", fs.Name())
		fmt.Fprintln(stderr, "Builds a regular expression from a JSON or YAML recipe.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	usage := func(msg string) int {
		fmt.Fprintf(stderr, "error: %s\n", msg)
		fs.Usage()
		return exitUsage
	}

	if fs.NArg() < 1 {
		return usage("a recipe file is required")
	}

	removeFn, err := remover(*remove)
	if err != nil {
		return usage(err.Error())
	}

	recipePath, inputs := fs.Arg(0), fs.Args()[1:]
	if recipePath == "-" && slices.Contains(inputs, "-") {
		return usage("stdin cannot hold both the recipe and an input")
	}

	var recipeFormat recipe.Format
	if *format != "" {
		recipeFormat, err = recipe.ParseFormat(*format)
	} else {
		recipeFormat, err = recipe.FormatFromPath(recipePath)
	}
	if err != nil {
		return usage(err.Error())
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	cfg, err := loadConfig(envFiles...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	logger, err := cfg.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	re, err := build(recipePath, recipeFormat, stdin, cfg.builderOptions(logger), *ignoreCase, *multiline)
	if err != nil {
		logger.Error("build failed", slog.String("recipe", recipePath), slog.Any("error", err))
		return exitError
	}

	logger.Debug("pattern built", slog.String("pattern", re.String()), slog.String("flags", re.Flags().String()))

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if len(inputs) == 0 {
		fmt.Fprintln(out, re.String())
		return exitOK
	}

	code := exitOK
	for _, name := range inputs {
		in, err := openInput(name, stdin)
		if err != nil {
			logger.Error("open input", slog.String("input", name), slog.Any("error", err))
			code = exitError
			continue
		}

		if removeFn != nil {
			if _, err := io.WriteString(out, removeFn(re, string(in.Bytes()))); err != nil {
				logger.Error("write output", slog.String("input", name), slog.Any("error", err))
				code = exitError
			}
		} else {
			n := printMatches(out, re, name, in.Bytes())
			logger.Info("searched input", slog.String("input", name), slog.Int("matches", n))
		}

		if err := in.Close(); err != nil {
			logger.Warn("close input", slog.String("input", name), slog.Any("error", err))
		}
	}

	if err := out.Flush(); err != nil {
		logger.Error("write output", slog.Any("error", err))
		code = exitError
	}

	return code
}

func build(path string, format recipe.Format, stdin io.Reader, opts []builder.Option, ignoreCase, multiline bool) (*regexp.Regexp, error) {
	in, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r, err := recipe.Decode(in.Bytes(), format)
	if err != nil {
		return nil, err
	}

	regexOpts, err := r.RegexOptions()
	if err != nil {
		return nil, err
	}
	if ignoreCase {
		regexOpts = append(regexOpts, builder.IgnoreCase)
	}
	if multiline {
		regexOpts = append(regexOpts, builder.Multiline)
	}

	b := builder.New(opts...)
	if err := r.Apply(b); err != nil {
		return nil, err
	}

	return b.Build(regexOpts...)
}

func remover(mode string) (func(*regexp.Regexp, string) string, error) {
	switch strings.ToLower(mode) {
	case "":
		return nil, nil
	case "all":
		return (*regexp.Regexp).Remove, nil
	case "first":
		return (*regexp.Regexp).RemoveFirst, nil
	case "last":
		return (*regexp.Regexp).RemoveLast, nil
	default:
		return nil, fmt.Errorf("unknown -remove mode %q", mode)
	}
}

// printMatches writes every match in data as "name:line:match", one per
// line, and returns how many it found.
func printMatches(w io.Writer, re *regexp.Regexp, name string, data []byte) int {
	var n int
	for i, line := range bytes.Split(data, []byte{'\n'}) {
		for _, m := range re.FindAllString(string(bytes.TrimSuffix(line, []byte{'\r'})), -1) {
			fmt.Fprintf(w, "%s:%d:%s\n", name, i+1, m)
			n++
		}
	}

	return n
}

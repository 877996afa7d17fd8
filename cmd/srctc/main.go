package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sourcetype/srctc/internal/analyzer"
	"github.com/sourcetype/srctc/internal/config"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "test" {
		config.IsTestMode = true
	} else if os.Getenv("SRCTC_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	source, path, err := readInputFromArgs(os.Args)
	if err != nil {
		log.Fatalf("srctc: %v", err)
	}
	if source == "" {
		return
	}

	result := analyzer.TypeCheck(source)

	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	for _, d := range result.Diagnostics {
		printDiagnostic(d, path, colorize)
	}

	if len(result.Diagnostics) > 0 {
		os.Exit(1)
	}
	if config.IsTestMode {
		fmt.Printf("%s: no type errors\n", displayPath(path))
		return
	}
	fmt.Printf("%s: no type errors (run %s)\n", displayPath(path), result.RunID)
}

func printDiagnostic(d error, path string, colorize bool) {
	if colorize {
		fmt.Fprintf(os.Stderr, "\x1b[33m%s: %s\x1b[0m\n", displayPath(path), d.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", displayPath(path), d.Error())
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func readInputFromArgs(args []string) (source, path string, err error) {
	if len(args) < 2 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: %s <file.src> or pipe source from stdin", args[0])
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[1], err)
	}
	return string(data), args[1], nil
}

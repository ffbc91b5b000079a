// Package cli implements the jsonremap command boundary: argument
// handling, file IO, and the JSON codec work around the engine. The
// engine itself never touches files.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"jsonremap/internal/engine"
	"jsonremap/internal/mapping"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// DefaultOutputFile is written when no output path is given.
const DefaultOutputFile = "output.json"

// Invocation describes one fully parsed run.
type Invocation struct {
	InputFile   string
	MappingFile string
	OutputFile  string
	Quiet       bool
}

// Usage prints the command synopsis.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: jsonremap [-quiet] <inputFile> <mappingFile> [outputFile]")
}

// ParseInvocation parses the argument slice (excluding argv[0]).
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("jsonremap", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var quiet bool

	fs.BoolVar(&quiet, "quiet", false, "suppress warnings")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, err
	}

	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		return Invocation{}, fmt.Errorf("expected <inputFile> <mappingFile> [outputFile], got %d arguments", len(rest))
	}

	inv := Invocation{
		InputFile:   rest[0],
		MappingFile: rest[1],
		OutputFile:  DefaultOutputFile,
		Quiet:       quiet,
	}

	if len(rest) == 3 {
		inv.OutputFile = rest[2]
	}

	return inv, nil
}

// Run parses args and executes, returning the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	inv, err := ParseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		Usage(stderr)

		return ExitInvalidInvocation
	}

	if err := Execute(inv, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err)

		return ExitFailure
	}

	return ExitSuccess
}

// Execute runs one invocation: read and decode both files, apply the
// mapping, write the pretty-printed result. File and decode failures
// are fatal here; everything past this boundary is best-effort.
func Execute(inv Invocation, stdout, stderr io.Writer) error {
	input, err := readJSON(inv.InputFile)
	if err != nil {
		return err
	}

	spec, err := mapping.LoadFile(inv.MappingFile)
	if err != nil {
		return err
	}

	// The collected diagnostics are the boundary's warning channel;
	// the engine's structured log would duplicate them here.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	it := engine.New(nil, logger)

	out, diags := it.Transform(input, spec)

	if !inv.Quiet {
		for _, w := range diags.Warnings {
			fmt.Fprintf(stderr, "%s: %s\n", w.Severity, w)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(inv.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", inv.OutputFile, err)
	}

	fmt.Fprintf(stdout, "wrote %s\n", inv.OutputFile)

	return nil
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("input file %s is not valid JSON: %w", path, err)
	}

	return v, nil
}

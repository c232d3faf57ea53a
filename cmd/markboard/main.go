// Package main is a headless driver for the markboard editing engine:
// it loads a markdown document, runs the block parser and layout engine,
// and prints the resulting structure. Useful for inspecting how the
// engine will segment and wrap a note without the whiteboard UI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/markboard/internal/config"
	"github.com/dshills/markboard/internal/engine"
	"github.com/dshills/markboard/internal/renderer/layout"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		width       float64
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Float64Var(&width, "width", 640, "Available layout width in pixels")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Markboard - markdown engine inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markboard [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nReads from stdin when no file is given.\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Markboard %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ed := engine.New(
		engine.WithText(text),
		engine.WithTabWidth(cfg.TabWidth),
		engine.WithWordWrap(cfg.WordWrap),
		engine.WithMaxUndoEntries(cfg.MaxUndoEntries),
		engine.WithMeasurer(layout.Monospace(cfg.CellWidth)),
	)

	fmt.Printf("document %s\n\nblocks:\n", ed.ID())
	for _, b := range ed.Blocks() {
		switch {
		case b.Level > 0:
			fmt.Printf("  %3d-%-3d %s(%d) [%d:%d)\n",
				b.StartLine, b.EndLine, b.Kind, b.Level, b.StartOffset, b.EndOffset)
		case b.Table != nil:
			fmt.Printf("  %3d-%-3d %s %dx%d [%d:%d)\n",
				b.StartLine, b.EndLine, b.Kind, len(b.Table.Rows), b.Table.ColumnCount(),
				b.StartOffset, b.EndOffset)
		default:
			fmt.Printf("  %3d-%-3d %s [%d:%d)\n",
				b.StartLine, b.EndLine, b.Kind, b.StartOffset, b.EndOffset)
		}
	}

	fmt.Printf("\nvisual lines (width %.0f):\n", width)
	lines := ed.Buffer().Lines()
	for _, v := range ed.Layout(width) {
		marker := " "
		if !v.First {
			marker = "+"
		}
		if v.TableRow {
			marker = "|"
		}
		r := []rune(lines[v.Line])
		fmt.Printf("  %3d%s %q\n", v.Line, marker, string(r[v.StartCol:v.EndCol()]))
	}
	return 0
}

// readInput returns the document text from the first argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

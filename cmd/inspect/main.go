package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/memtable/cell"
	"github.com/wippyai/memtable/csvio"
	"github.com/wippyai/memtable/store"
	"github.com/wippyai/memtable/table"
)

func main() {
	var (
		csvFile     = flag.String("csv", "", "Path to CSV file")
		jsonFile    = flag.String("json", "", "Path to table JSON file ({rows, cols, cells})")
		preview     = flag.Int("n", 10, "Rows to show in the preview")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *csvFile == "" && *jsonFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -csv <file.csv> [-n rows]")
		fmt.Fprintln(os.Stderr, "       inspect -json <file.json>")
		fmt.Fprintln(os.Stderr, "       inspect -csv <file.csv> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		store.SetLogger(logger)
	}

	g, source, err := load(*csvFile, *jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(source, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	summarize(source, g, *preview)
}

func load(csvFile, jsonFile string) (*table.Grid[cell.Value], string, error) {
	if csvFile != "" {
		g, err := csvio.ReadTypedFile(csvFile)
		return g, csvFile, err
	}

	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, jsonFile, fmt.Errorf("read file: %w", err)
	}
	g := table.New[cell.Value]()
	if err := json.Unmarshal(data, g); err != nil {
		return nil, jsonFile, fmt.Errorf("decode table: %w", err)
	}
	return g, jsonFile, nil
}

func summarize(source string, g *table.Grid[cell.Value], preview int) {
	fmt.Printf("Table: %s\n", source)
	fmt.Printf("Shape: %d rows x %d cols (%d cells)\n", g.Rows(), g.Cols(), g.Len())

	fmt.Printf("\nColumns:\n")
	for c := 0; c < g.Cols(); c++ {
		fmt.Printf("  col %d: %s\n", c, columnKind(g, c))
	}

	if preview > g.Rows() {
		preview = g.Rows()
	}
	fmt.Printf("\nFirst %d rows:\n", preview)
	for r := 0; r < preview; r++ {
		fmt.Print(" ")
		it := g.Row(r)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			fmt.Printf(" %s", v)
		}
		fmt.Println()
	}
}

// columnKind reports the single kind a column holds, or "mixed".
// Nil cells are ignored so sparse columns still classify.
func columnKind(g *table.Grid[cell.Value], c int) string {
	kind := cell.KindNil
	it := g.Column(c)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v.IsNil() {
			continue
		}
		if kind == cell.KindNil {
			kind = v.Kind()
			continue
		}
		if kind != v.Kind() {
			return "mixed"
		}
	}
	return string(kind)
}

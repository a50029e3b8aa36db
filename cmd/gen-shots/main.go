package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/okian/halfcourt/internal/gendata"
)

// Default generation constants.
const (
	defaultRows = 5000
	defaultSeed = 1
)

func main() {
	var (
		rows    = flag.Int("rows", defaultRows, "Number of play-by-play rows to generate")
		out     = flag.String("out", "", "Output CSV path (default: stdout)")
		seed    = flag.Int64("seed", defaultSeed, "Random seed for reproducible feeds")
		seasons = flag.String("seasons", "", "Comma-separated season labels")
		dirty   = flag.Float64("dirty", 0.03, "Fraction of rows with missing coordinates or non-shot types")
	)
	flag.Parse()

	cfg := gendata.Config{
		Rows:       *rows,
		Seed:       *seed,
		DirtyShare: *dirty,
	}
	if *seasons != "" {
		cfg.Seasons = strings.Split(*seasons, ",")
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			os.Stderr.WriteString("failed to create output: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := gendata.New(cfg).WriteCSV(context.Background(), w); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// Command edgetrace converts an indexed-colour image into compact SVG
// outlines, one evenodd-filled path per colour.
//
// Usage:
//
//	edgetrace [flags] image.png > out.svg
//	edgetrace -ascii < art.txt
//
// The image must use 1-bit alpha and fewer than nineteen distinct opaque
// colours. In -ascii mode, edgetrace reads '#' art from standard input
// and prints the raw move/draw/close stream instead.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pelletier/go-toml/v2"

	"github.com/pxtrace/edges"
	"github.com/pxtrace/edges/palette"
	"github.com/pxtrace/edges/rect"
	"github.com/pxtrace/edges/svg"
)

// config is the tool's tuning state, settable from a TOML file and
// overridden by flags.
type config struct {
	Optimizers []string `toml:"optimizers"`
	Eager      bool     `toml:"eager"`
	Compare    string   `toml:"compare"`
	Workers    int      `toml:"workers"`
	Orthogonal float64  `toml:"orthogonal"`
	Diagonal   float64  `toml:"diagonal"`
}

func defaultConfig() config {
	return config{
		Optimizers: []string{"minimal", "clever"},
		Eager:      true,
		Compare:    "draws",
		Workers:    0,
		Orthogonal: rect.DefaultOrthogonalScore,
		Diagonal:   rect.DefaultDiagonalScore,
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("edgetrace: ")

	var (
		output     = flag.String("o", "", "output file (default stdout)")
		configPath = flag.String("config", "", "TOML tuning file")
		optimizers = flag.String("optimizers", "minimal,clever",
			"comma-separated optimizer roster: minimal, mapped, accreting, eroding, clever")
		eager      = flag.Bool("eager", true, "apply score-neutral cell additions")
		compare    = flag.String("compare", "draws", "tournament comparison: draws or coords")
		workers    = flag.Int("workers", 0, "parallel workers (default GOMAXPROCS)")
		orthogonal = flag.Float64("orthogonal", rect.DefaultOrthogonalScore,
			"selector weight of edge-adjacent exposure")
		diagonal = flag.Float64("diagonal", rect.DefaultDiagonalScore,
			"selector weight of corner-adjacent exposure")
		ascii   = flag.Bool("ascii", false, "trace '#' art from stdin, print the command stream")
		verbose = flag.Bool("v", false, "log slicing progress to stderr")
	)
	flag.Parse()

	if *verbose {
		edges.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := defaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parsing %s: %v", *configPath, err)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "optimizers":
			cfg.Optimizers = strings.Split(*optimizers, ",")
		case "eager":
			cfg.Eager = *eager
		case "compare":
			cfg.Compare = *compare
		case "workers":
			cfg.Workers = *workers
		case "orthogonal":
			cfg.Orthogonal = *orthogonal
		case "diagonal":
			cfg.Diagonal = *diagonal
		}
	})

	if *ascii {
		if err := traceASCII(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: edgetrace [flags] image-file")
		flag.PrintDefaults()
		os.Exit(2)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	if err := run(cfg, flag.Arg(0), out); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, path string, out *os.File) error {
	grid, err := palette.Load(path)
	if err != nil {
		return err
	}

	roster, err := buildRoster(cfg)
	if err != nil {
		return err
	}
	comparison, err := buildComparison(cfg.Compare)
	if err != nil {
		return err
	}

	slicer := &edges.MultiOptimizerSlicer[rect.Grid, image.Point]{
		Collector: rect.Colors,
		Selector: &rect.PerimeterSelector{
			Orthogonal: cfg.Orthogonal,
			Diagonal:   cfg.Diagonal,
		},
		Optimizers: roster,
		Layouts:    rect.Layouts,
		Compare:    comparison,
		Workers:    cfg.Workers,
	}

	doc := svg.NewDocument(grid.Width(), grid.Height())
	slices, err := slicer.Slice(grid, func(color int) edges.Scribe[image.Point] {
		return doc.NewPath(grid.RGBA(color))
	})
	if err != nil {
		return err
	}
	if err := edges.RunAll(context.Background(), cfg.Workers, slices.Processes); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if err := doc.Encode(w); err != nil {
		return err
	}
	return w.Flush()
}

func buildRoster(cfg config) ([]edges.Optimizer[rect.Grid], error) {
	var roster []edges.Optimizer[rect.Grid]
	for _, name := range cfg.Optimizers {
		switch strings.TrimSpace(name) {
		case "minimal":
			roster = append(roster, rect.Minimal)
		case "mapped":
			roster = append(roster, rect.Mapped)
		case "accreting":
			roster = append(roster, rect.NewAccreting(edges.ByMovesAndDraws, cfg.Eager))
		case "eroding":
			roster = append(roster, rect.NewEroding(edges.ByMovesAndDraws, cfg.Eager))
		case "clever":
			roster = append(roster, rect.NewClever(edges.ByMovesAndDraws, edges.ByDraws, cfg.Eager))
		default:
			return nil, fmt.Errorf("unknown optimizer %q", name)
		}
	}
	return roster, nil
}

func buildComparison(name string) (edges.Comparison, error) {
	switch name {
	case "draws":
		return edges.CompareDraws, nil
	case "coords":
		return edges.CompareMovesAndDraws, nil
	default:
		return nil, fmt.Errorf("unknown comparison %q", name)
	}
}

// traceASCII reads '#' art from r, traces colour 1, and prints the raw
// command stream: one "(x, y)" per point, "DONE" per closed path.
func traceASCII(r *os.File, out *os.File) error {
	var (
		width, height int
		data          = bitset.New(0)
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) > width {
			// Re-pack the rows we have at the wider stride.
			alt := bitset.New(uint(len(line) * (height + 1)))
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if data.Test(uint(x + y*width)) {
						alt.Set(uint(x + y*len(line)))
					}
				}
			}
			data = alt
			width = len(line)
		}
		for i, ch := range line {
			if ch == '#' {
				data.Set(uint(i + height*width))
			}
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return err
	}

	grid, err := rect.NewBitGrid(width, height, data)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	defer w.Flush()
	edges.Drain(edges.NewTracer[image.Point](rect.NewLayout(grid), &printScribe{w: w}))
	return nil
}

type printScribe struct {
	w *bufio.Writer
}

func (s *printScribe) Move(to image.Point) { fmt.Fprintf(s.w, "(%d, %d)", to.X, to.Y) }
func (s *printScribe) Draw(to image.Point) { fmt.Fprintf(s.w, " (%d, %d)", to.X, to.Y) }
func (s *printScribe) Close()              { fmt.Fprintln(s.w, " DONE") }

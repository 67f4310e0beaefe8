// gridpath is the external driver for the search engine: it stamps a
// random maze, runs a chosen strategy (or all five), grades every run
// against the Dijkstra ground-truth oracle, and optionally writes a PNG
// snapshot of walls, exploration and path.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// cellPixels is the side length of one rendered cell, in pixels.
const cellPixels = 12

type options struct {
	Rows      int     `long:"rows" default:"25" description:"Grid height in cells"`
	Cols      int     `long:"cols" default:"50" description:"Grid width in cells"`
	Density   float64 `long:"density" default:"0.3" description:"Per-cell wall probability, in [0, 1)"`
	Seed      int64   `long:"seed" default:"1" description:"Random seed for wall stamping"`
	Algorithm string  `long:"algorithm" short:"a" default:"dijkstra" description:"One of: dijkstra, astar, greedy, swarm, bmssp"`
	Compare   bool    `long:"compare" short:"c" description:"Run all five strategies and print a comparison table"`
	Output    string  `long:"output" short:"o" description:"Write a PNG snapshot of the run to this file"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		// go-flags already printed the usage text.
		os.Exit(1)
	}
	if err := run(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	base, err := grid.NewGrid(opts.Rows, opts.Cols)
	if err != nil {
		return err
	}
	maze := grid.RandomizeWalls(base,
		grid.WithWallDensity(opts.Density),
		grid.WithSeed(opts.Seed),
	)

	if opts.Compare {
		return compareAll(maze)
	}

	alg, err := search.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return err
	}
	verdict, got, want, err := search.Classify(maze, alg)
	if err != nil {
		return err
	}
	printRun(alg, verdict, got, want)

	if opts.Output != "" {
		if err := writeSnapshot(opts.Output, maze, got); err != nil {
			return err
		}
		fmt.Printf("snapshot written to %s\n", opts.Output)
	}

	return nil
}

// compareAll runs every strategy on an independent copy of the same wall
// configuration and prints one line per run.
func compareAll(maze *grid.Grid) error {
	fmt.Printf("%-10s %8s %8s %10s\n", "algorithm", "visited", "path", "verdict")
	for _, alg := range search.Algorithms() {
		board := maze.CloneWalls()
		verdict, got, _, err := search.Classify(board, alg)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %8d %8d %10s\n",
			alg, len(got.VisitedOrder), got.PathLen(), verdict)
	}

	return nil
}

func printRun(alg search.Algorithm, verdict search.Verdict, got, want *search.Result) {
	fmt.Printf("algorithm: %s\n", alg)
	fmt.Printf("visited:   %d nodes\n", len(got.VisitedOrder))
	if got.Found() {
		fmt.Printf("path:      %d nodes (oracle: %d)\n", got.PathLen(), want.PathLen())
	} else {
		fmt.Println("path:      none")
	}
	fmt.Printf("verdict:   %s\n", verdict)
}

// writeSnapshot renders the post-run board — walls black, explored cells
// pale blue, the path gold, endpoints green and red — and encodes it as a
// white-bordered PNG.
func writeSnapshot(path string, g *grid.Grid, res *search.Result) error {
	var (
		open    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		wall    = color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
		visited = color.RGBA{R: 0xc2, G: 0xda, B: 0xf5, A: 0xff}
		route   = color.RGBA{R: 0xe8, G: 0xb9, B: 0x23, A: 0xff}
		src     = color.RGBA{G: 0xa0, A: 0xff}
		dst     = color.RGBA{R: 0xc0, A: 0xff}
	)

	onPath := make(map[*grid.Node]bool, res.PathLen())
	for _, n := range res.Path {
		onPath[n] = true
	}

	pic := image.NewRGBA(image.Rect(0, 0, g.Cols*cellPixels, g.Rows*cellPixels))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			n, _ := g.At(row, col)
			c := open
			switch {
			case n.Start:
				c = src
			case n.Finish:
				c = dst
			case n.Wall:
				c = wall
			case onPath[n]:
				c = route
			case n.Visited:
				c = visited
			}
			fillCell(pic, row, col, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, image_utils.AddImageBorder(pic, color.White, cellPixels/2))
}

func fillCell(pic *image.RGBA, row, col int, c color.Color) {
	for y := row * cellPixels; y < (row+1)*cellPixels; y++ {
		for x := col * cellPixels; x < (col+1)*cellPixels; x++ {
			pic.Set(x, y, c)
		}
	}
}

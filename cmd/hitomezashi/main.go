// hitomezashi-stitch - Hitomezashi stitch patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command hitomezashi draws a Hitomezashi pattern and writes it to SVG,
// PNG or PDF files.
//
// Usage:
//
//	hitomezashi -x SEED -y SEED [flags]
//
// The seed given by -x defines the rows, the seed given by -y the
// columns. At least one of -svg, -png and -pdf must be given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"
)

func main() {
	x := flag.String("x", "", "seed for the rows (axis 0)")
	y := flag.String("y", "", "seed for the columns (axis 1)")
	size := flag.String("size", "", "nominal cell size at 72 dpi")
	dpi := flag.Float64("dpi", hitomezashi.ReferenceDPI, "target resolution")
	width := flag.Float64("width", hitomezashi.DefaultLineWidth, "line width in pixels")
	lineCap := flag.String("cap", "square", `line cap, "round" or "square"`)
	offset := flag.Float64("offset", hitomezashi.DefaultOffset, "probability that a set bit keeps its phase, 0 for deterministic output")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random pattern")
	vowels := flag.Bool("vowels-on", false, "map vowels to 1 instead of 0")
	svgFile := flag.String("svg", "", "write SVG to `file`")
	pngFile := flag.String("png", "", "write PNG to `file`")
	pdfFile := flag.String("pdf", "", "write PDF to `file`")
	verbose := flag.Bool("v", false, "log render details")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	hitomezashi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *svgFile == "" && *pngFile == "" && *pdfFile == "" {
		fmt.Fprintln(os.Stderr, "hitomezashi: no output file given")
		flag.Usage()
		os.Exit(2)
	}

	opts := []hitomezashi.Option{
		hitomezashi.WithDPI(*dpi),
		hitomezashi.WithLineWidth(*width),
		hitomezashi.WithLineCap(*lineCap),
		hitomezashi.WithOffset(*offset),
	}
	if *size != "" {
		opts = append(opts, hitomezashi.WithSize(*size))
	}
	if *seed != 0 {
		opts = append(opts, hitomezashi.WithSeed(*seed))
	}
	if *vowels {
		opts = append(opts, hitomezashi.WithEncoder(hitomezashi.Encoder{State: hitomezashi.StateOn}))
	}

	err := run([]string{*x, *y}, *svgFile, *pngFile, *pdfFile, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hitomezashi:", err)
		if errors.Is(err, hitomezashi.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(seeds []string, svgFile, pngFile, pdfFile string, opts []hitomezashi.Option) error {
	prov := hitomezashi.NewImageProvider()
	opts = append(opts, hitomezashi.WithProvider(prov))

	p, err := hitomezashi.New(seeds, opts...)
	if err != nil {
		return err
	}

	if svgFile != "" {
		if err := writeFile(svgFile, p.WriteSVG); err != nil {
			return err
		}
	}
	if pngFile != "" {
		surface, ok := prov.Lookup(p.ID())
		if !ok {
			return hitomezashi.ErrCapabilityUnavailable
		}
		if err := writeFile(pngFile, surface.WritePNG); err != nil {
			return err
		}
	}
	if pdfFile != "" {
		if err := p.WritePDF(pdfFile); err != nil {
			return fmt.Errorf("%s: %w", pdfFile, err)
		}
	}
	return nil
}

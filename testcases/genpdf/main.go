// seehuhn.de/go/hilbert - pseudo-Hilbert scans of arbitrary rectangles
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

// Command genpdf draws the scans of all test cases for visual review.
// It creates one PDF per test case and optionally renders each one to a
// PNG using Ghostscript.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/hilbert"
	"seehuhn.de/go/hilbert/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

var cli struct {
	Dir     string  `short:"d" help:"Output directory." default:"testdata/reference" type:"path"`
	Cases   string  `short:"c" help:"YAML file with additional test cases." type:"existingfile"`
	Cell    float64 `help:"Size of a grid cell in PDF points." default:"12"`
	PNG     bool    `help:"Also render every PDF to PNG, using gs."`
	Pixels  int     `help:"Size of a grid cell in PNG output, in pixels." default:"16"`
	Verbose bool    `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli, kong.Description("Draw pseudo-Hilbert scans of the test cases as PDF files."))

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		slog.Error("genpdf failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	all := maps.Clone(testcases.All)
	if cli.Cases != "" {
		f, err := os.Open(cli.Cases)
		if err != nil {
			return err
		}
		extra, err := testcases.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cli.Cases, err)
		}
		all["extra"] = extra
	}

	if err := os.MkdirAll(cli.Dir, 0755); err != nil {
		return err
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, tc := range all[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(cli.Dir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("wrote", "file", pdfPath)

			if cli.PNG {
				pngPath := filepath.Join(cli.Dir, name+".png")
				if err := renderPNG(pdfPath, pngPath, resolution()); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			count++
		}
	}
	slog.Info("generated reference drawings", "dir", cli.Dir, "count", count)
	return nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	var seq hilbert.Sequence[uint32]
	var tiles []hilbert.Tile[uint32]
	if tc.Tiled {
		tiles = hilbert.Plan(tc.Width, tc.Height)
		seq = hilbert.NewTiledScan(tc.Width, tc.Height)
	} else {
		o := hilbert.Horizontal
		if tc.Vertical {
			o = hilbert.Vertical
		}
		tiles = []hilbert.Tile[uint32]{{Width: tc.Width, Height: tc.Height, Orientation: o}}
		seq = hilbert.NewScan(tc.Width, tc.Height, o)
	}
	p, err := hilbert.Path(seq)
	if err != nil {
		return err
	}

	// one cell of margin on every side
	paper := &pdf.Rectangle{
		URx: cli.Cell * float64(tc.Width+2),
		URy: cli.Cell * float64(tc.Height+2),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// grid units from here on, with the origin at the lower left cell
	page.Transform(matrix.Matrix{cli.Cell, 0, 0, cli.Cell, cli.Cell, cli.Cell})

	// alternate the shading of the tiles
	for i, t := range tiles {
		r := t.Rect()
		page.SetFillColor(color.DeviceGray(0.85 + 0.1*float64(i%2)))
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.25)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	coordIdx := 0
	for _, cmd := range p.Cmds {
		pt := p.Coords[coordIdx]
		coordIdx++
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pt.X, pt.Y)
		case path.CmdLineTo:
			page.LineTo(pt.X, pt.Y)
		}
	}
	if len(p.Cmds) == 1 {
		// a single cell has no segments; draw a dot
		page.LineTo(p.Coords[0].X, p.Coords[0].Y)
	}
	page.Stroke()

	// mark the entry cell
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0.35, 0.35, 0.3, 0.3)
	page.Fill()

	return page.Close()
}

// resolution returns the Ghostscript resolution, in dots per inch, which
// maps one grid cell to cli.Pixels pixels.
func resolution() int {
	return max(1, int(72*float64(cli.Pixels)/cli.Cell+0.5))
}

func renderPNG(pdfPath, pngPath string, dpi int) error {
	cmd := exec.Command(
		"gs", "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=pnggray",
		"-r"+strconv.Itoa(dpi),
		"-dGraphicsAlphaBits=4",
		"-dTextAlphaBits=4",
		"-sOutputFile="+pngPath,
		pdfPath,
	)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("gs: %w", err)
	}
	if len(out) > 0 {
		slog.Debug("gs output", "file", pdfPath, "output", string(out))
	}
	slog.Debug("rendered", "file", pngPath, "dpi", dpi)
	return nil
}

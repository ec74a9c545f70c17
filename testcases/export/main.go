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

// Command export writes the scan sequences of all test cases to JSON.
// The output can be compared against an independent implementation.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/hilbert"
	"seehuhn.de/go/hilbert/testcases"
)

var cli struct {
	Output  string `short:"o" help:"Output file." default:"testdata/testcases.json" type:"path"`
	Cases   string `short:"c" help:"YAML file with additional test cases." type:"existingfile"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli, kong.Description("Export pseudo-Hilbert scans of the test cases as JSON."))

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	all, err := loadCases()
	if err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, tc := range all[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			slog.Debug("exported", "name", jtc.Name, "cells", len(jtc.Points), "exit", jtc.Exit)
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cli.Output), 0755); err != nil {
		return err
	}
	f, err := os.Create(cli.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	slog.Info("wrote test cases", "file", cli.Output, "count", len(out.TestCases))
	return f.Close()
}

// loadCases returns the built-in cases, together with the cases from
// the --cases file under the category "extra".
func loadCases() (map[string][]testcases.TestCase, error) {
	all := maps.Clone(testcases.All)
	if cli.Cases == "" {
		return all, nil
	}

	f, err := os.Open(cli.Cases)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	extra, err := testcases.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cli.Cases, err)
	}
	all["extra"] = extra
	return all, nil
}

type jsonTestCase struct {
	Name        string      `json:"name"`
	Width       uint32      `json:"width"`
	Height      uint32      `json:"height"`
	Orientation string      `json:"orientation,omitempty"`
	Tiles       [][4]uint32 `json:"tiles,omitempty"`
	Exit        [2]uint32   `json:"exit"`
	Points      [][2]uint32 `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	var seq hilbert.Sequence[uint32]
	if tc.Tiled {
		for _, t := range hilbert.Plan(tc.Width, tc.Height) {
			jtc.Tiles = append(jtc.Tiles, [4]uint32{t.X, t.Y, t.Width, t.Height})
		}
		seq = hilbert.NewTiledScan(tc.Width, tc.Height)
	} else {
		o := hilbert.Horizontal
		if tc.Vertical {
			o = hilbert.Vertical
		}
		jtc.Orientation = o.String()
		seq = hilbert.NewScan(tc.Width, tc.Height, o)
	}

	pts, err := hilbert.Collect(seq)
	if err != nil {
		return jtc, err
	}
	jtc.Points = make([][2]uint32, len(pts))
	for i, p := range pts {
		jtc.Points[i] = [2]uint32{p.X, p.Y}
	}
	if n := len(pts); n > 0 {
		jtc.Exit = jtc.Points[n-1]
	}
	return jtc, nil
}

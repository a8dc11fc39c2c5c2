// pendulum.dev/go/sxbp - a rectilinear self-avoiding curve generator
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

// Command sxbp drives the library end to end: -p derives a figure from
// input bytes, -g refines it, -r rasterizes a solved figure. The three
// stages compose in one invocation (-pg, -pgr, -gr).
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pendulum.dev/go/sxbp/bitmap"
	"pendulum.dev/go/sxbp/codec"
	"pendulum.dev/go/sxbp/figure"
	"pendulum.dev/go/sxbp/refine"
	"pendulum.dev/go/sxbp/version"
)

const usage = `usage: sxbp [-p] [-g] [-r] [-i path] [-o path] [-v] [-h]

  -p, --prepare   derive an initial figure from input bytes
  -g, --generate  refine an already-prepared figure
  -r, --render    rasterize a solved figure to a bitmap
  -i path         read input from path instead of stdin
  -o path         write output to path instead of stdout
  -v              print the version and exit
  -h              print this message and exit

Stages compose in one invocation: -pg, -pgr, -gr are all valid.
`

type options struct {
	prepare, generate, render bool
	version, help             bool
	input, output             string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "sxbp: %v\n", err)
		os.Exit(1)
	}

	if opts.help {
		fmt.Fprint(os.Stdout, usage)
		return
	}
	if opts.version {
		fmt.Fprintln(os.Stdout, version.String())
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "sxbp: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs accepts clustered short flags (-pg, -pgr, -gr): any run of
// p/g/r letters after a single dash enables the corresponding stage, in
// addition to the separated form.
func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help":
			opts.help = true
			continue
		case "-v", "--version":
			opts.version = true
			continue
		case "-i":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("-i requires a path argument")
			}
			opts.input = args[i]
			continue
		case "-o":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("-o requires a path argument")
			}
			opts.output = args[i]
			continue
		case "--prepare":
			opts.prepare = true
			continue
		case "--generate":
			opts.generate = true
			continue
		case "--render":
			opts.render = true
			continue
		}

		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			return opts, fmt.Errorf("unrecognized argument %q", arg)
		}
		body := arg[1:]
		if body == "" {
			return opts, fmt.Errorf("unrecognized argument %q", arg)
		}
		for _, c := range body {
			switch c {
			case 'p':
				opts.prepare = true
			case 'g':
				opts.generate = true
			case 'r':
				opts.render = true
			default:
				return opts, fmt.Errorf("unrecognized flag %q in %q", c, arg)
			}
		}
	}
	return opts, nil
}

func run(opts options) error {
	if !opts.prepare && !opts.generate && !opts.render {
		return fmt.Errorf("at least one of -p, -g, -r is required (see -h)")
	}

	input, err := readInput(opts.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var f *figure.Figure
	if opts.prepare {
		f = figure.FromBits(input)
	} else {
		f, err = codec.Decode(input)
		if err != nil {
			return fmt.Errorf("decode figure: %w", err)
		}
	}

	if opts.generate {
		if err := refine.Solve(f, nil); err != nil {
			return fmt.Errorf("refine figure: %w", err)
		}
	}

	var out []byte
	if opts.render {
		out, err = renderBitmap(f, opts.output)
		if err != nil {
			return fmt.Errorf("render bitmap: %w", err)
		}
	} else {
		out = codec.Encode(f)
	}

	return writeOutput(opts.output, out)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// renderBitmap rasterizes f and encodes it as PBM if the output path ends
// in ".pbm", PNG otherwise (including stdout, with no path to inspect).
func renderBitmap(f *figure.Figure, outputPath string) ([]byte, error) {
	bm, err := bitmap.Render(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if strings.EqualFold(filepath.Ext(outputPath), ".pbm") {
		if err := bitmap.WritePBM(&buf, bm); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if err := bitmap.WritePNG(&buf, bm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

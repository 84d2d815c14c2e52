package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
)

//go:embed header.tmpl
var Templates embed.FS

var HEADER_TEMPLATE *template.Template

func init() {
	var err error
	HEADER_TEMPLATE, err = template.ParseFS(Templates, "header.tmpl")
	if err != nil {
		panic(err)
	}
}

// Header holds the fields above the geometry block in an input deck:
// the resource directives, the route line, and the title.
type Header struct {
	Name    string
	NumCPUs int
	Mem     int
	Route   string
	Title   string
}

// WriteInput composes a complete input deck from a header, a geometry
// block, and a basis set block. The composition is purely structural;
// none of the blocks are inspected.
func WriteInput(w io.Writer, h Header, geom, basis []string) error {
	nw := bufio.NewWriter(w)
	if err := HEADER_TEMPLATE.Execute(nw, h); err != nil {
		return err
	}
	for _, line := range geom {
		fmt.Fprintln(nw, line)
	}
	for _, line := range basis {
		fmt.Fprintln(nw, line)
	}
	return nw.Flush()
}

// WriteCom writes a composed input deck to filename
func WriteCom(filename string, h Header, geom, basis []string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteInput(f, h, geom, basis)
}

// hasCoord reports whether the block defines coord as a variable with
// a single numeric value
func hasCoord(lines []string, coord string) bool {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != coord {
			continue
		}
		if _, err := strconv.ParseFloat(fields[1], 64); err == nil {
			return true
		}
	}
	return false
}

// EditScan rewrites the named coordinate in the deck at filename into
// a ranged-scan directive running from eq*lb to eq*ub in steps steps,
// where eq is the equilibrium value read from the deck. The target
// line is the first whose fields are exactly the coordinate name and
// one numeric token, so B4 never matches a B41 definition. The
// returned minimum and step size must be the ones used to label the
// extracted energies later; recomputing them risks a skewed distance
// axis.
func EditScan(filename, coord string, lb, ub float64, steps int) (min, step float64, err error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return 0, 0, ErrFileNotFound
	}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != coord {
			continue
		}
		eq, perr := strconv.ParseFloat(fields[1], 64)
		if perr != nil {
			continue
		}
		min = eq * lb
		max := eq * ub
		step = (max - min) / float64(steps)
		lines[i] = fmt.Sprintf(" %s   %.8f   %d   %v",
			coord, min, steps, step)
		return min, step, WriteFile(filename, lines)
	}
	return 0, 0, ErrCoordNotFound
}

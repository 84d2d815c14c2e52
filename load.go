package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters for one bond scan run. Defaults are
// filled in before unmarshaling so the input file only needs to name
// what it changes.
type Config struct {
	GeomFile  string
	BasisFile string
	Coord     string
	LBound    float64
	UBound    float64
	Steps     int
	OptRoute  string
	ScanRoute string
	Mem       int
	NumCPUs   int
	Gauss     string
	Name      string
}

func LoadConfig(filename string) (Config, error) {
	conf := Config{
		GeomFile:  "geom.dat",
		BasisFile: "basis.gbs",
		LBound:    0.7,
		UBound:    1.75,
		Steps:     105,
		OptRoute:  "#P UMP2/gen opt=Z-Matrix",
		ScanRoute: "#P UMP2/gen scan",
		Mem:       1000,
		NumCPUs:   4,
		Gauss:     "g16",
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		return conf, ErrFileNotFound
	}
	if err := toml.Unmarshal(cont, &conf); err != nil {
		return conf, err
	}
	switch {
	case conf.Coord == "":
		err = fmt.Errorf("%s: no scan coordinate given", filename)
	case conf.Steps < 1:
		err = fmt.Errorf("%s: steps must be positive, got %d",
			filename, conf.Steps)
	case conf.LBound >= conf.UBound:
		err = fmt.Errorf("%s: empty scan range [%f, %f]",
			filename, conf.LBound, conf.UBound)
	}
	return conf, err
}

// LoadGeom extracts the geometry block from filename. The expected
// layout is any number of leading blank lines, a title line, exactly
// two blank lines, and then the block itself, ending at two
// consecutive blank lines or the end of the file. The first line of
// the returned block is the charge/multiplicity line.
func LoadGeom(filename string) (title string, geom []string, err error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return "", nil, ErrFileNotFound
	}
	i := 0
	for i < len(lines) && blank(lines[i]) {
		i++
	}
	if i == len(lines) {
		return "", nil, ErrBlankGeometry
	}
	title = strings.TrimSpace(lines[i])
	i++
	for j := 0; j < 2; j++ {
		if i == len(lines) || !blank(lines[i]) {
			return "", nil, ErrMalformedGeom
		}
		i++
	}
	var blanks int
	for ; i < len(lines); i++ {
		if blank(lines[i]) {
			blanks++
			if blanks == 2 {
				break
			}
		} else {
			blanks = 0
		}
		geom = append(geom, lines[i])
	}
	for len(geom) > 0 && blank(geom[len(geom)-1]) {
		geom = geom[:len(geom)-1]
	}
	if len(geom) == 0 {
		return "", nil, ErrBlankGeometry
	}
	return title, geom, nil
}

// LoadBasis returns the basis set block from filename, framed by
// exactly one blank line at each end no matter how the input was
// padded. The contents are not otherwise inspected.
func LoadBasis(filename string) ([]string, error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	start, end := 0, len(lines)
	for start < end && blank(lines[start]) {
		start++
	}
	for end > start && blank(lines[end-1]) {
		end--
	}
	if start == end {
		return nil, ErrBlankBasis
	}
	basis := make([]string, 0, end-start+2)
	basis = append(basis, "")
	basis = append(basis, lines[start:end]...)
	basis = append(basis, "")
	return basis, nil
}

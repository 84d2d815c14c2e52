package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
)

const (
	// from https://physics.nist.gov/cgi-bin/cuu/Value?hrev
	htToEv = 27.211407953

	zmatMarker   = "Final structure in terms of initial Z-matrix"
	orientMarker = "Standard orientation:"
	energyLabel  = "EUMP2"
	terminated   = "Normal termination of Gaussian"
)

// CheckLog reports whether the engine terminated normally, judged
// only by the last non-blank line of the log
func CheckLog(filename string) error {
	lines, err := ReadFile(filename)
	if err != nil {
		return ErrFileNotFound
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if blank(lines[i]) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(lines[i]), terminated) {
			return nil
		}
		break
	}
	return ErrGaussianFailed
}

// ParseZmat extracts the converged Z-matrix from an optimization log
// and reformats it for a new input deck. The log writes the matrix in
// assignment syntax, so commas and equals signs become spaces; the
// Variables line becomes the blank line separating connectivity from
// values in deck syntax. The section ends at the first line starting
// with a digit, which is the archive that follows it.
func ParseZmat(filename string) (zmat []string, err error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	var in bool
loop:
	for _, line := range lines {
		switch {
		case strings.Contains(line, zmatMarker):
			in = true
		case in:
			trim := strings.TrimSpace(line)
			if len(trim) > 0 && '0' <= trim[0] && trim[0] <= '9' {
				break loop
			}
			if strings.Contains(line, "Variables") {
				zmat = append(zmat, "")
				continue
			}
			line = strings.ReplaceAll(line, ",", " ")
			line = strings.ReplaceAll(line, "=", " ")
			zmat = append(zmat, strings.TrimSpace(line))
		}
	}
	for len(zmat) > 0 && blank(zmat[len(zmat)-1]) {
		zmat = zmat[:len(zmat)-1]
	}
	if len(zmat) == 0 {
		return nil, ErrStructureNotFound
	}
	return zmat, nil
}

// ParseTraj extracts every Standard orientation table from filename
// and returns them as a sequence of XYZ blocks in log order. Each
// table contributes an atom count line, a blank comment line, and one
// "symbol x y z" line per atom, with the atomic number mapped to its
// element symbol.
func ParseTraj(filename string) (traj []string, err error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	var (
		in    bool
		skip  int
		atoms []string
	)
	for _, line := range lines {
		switch {
		case skip > 0:
			skip--
		case strings.Contains(line, orientMarker):
			skip = 4
			in = true
			atoms = atoms[:0]
		case in && strings.HasPrefix(strings.TrimSpace(line), "-"):
			traj = append(traj, strconv.Itoa(len(atoms)), "")
			traj = append(traj, atoms...)
			in = false
		case in:
			fields := strings.Fields(line)
			if len(fields) < 6 {
				continue
			}
			z, _ := strconv.Atoi(fields[1])
			atoms = append(atoms, fmt.Sprintf("%s %s %s %s",
				Symbol(z), fields[3], fields[4], fields[5]))
		}
	}
	return traj, nil
}

var energyRe = regexp.MustCompile(`[-+]?\d+\.\d+[DdEe][+-]\d+`)

// ParseEnergies collects the energy from every scan point in
// filename, converted from hartrees to electronvolts. Gaussian prints
// Fortran exponents, so D is swapped for E before parsing. A
// malformed energy aborts the extraction unless lenient is set, in
// which case it is logged and skipped.
func ParseEnergies(filename string, lenient bool) (energies []float64, err error) {
	lines, err := ReadFile(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	for _, line := range lines {
		idx := strings.Index(line, energyLabel)
		if idx < 0 {
			continue
		}
		str := energyRe.FindString(line[idx:])
		v, perr := strconv.ParseFloat(
			strings.Replace(str, "D", "E", 1), 64)
		if str == "" || perr != nil {
			if lenient {
				log.Printf("skipping unparsable energy in %q\n",
					line)
				continue
			}
			return nil, ErrEnergyNotParsed
		}
		energies = append(energies, v*htToEv)
	}
	if len(energies) == 0 {
		return nil, ErrEnergyNotFound
	}
	return energies, nil
}

// WriteEnergies writes one "distance energy" pair per line to w. min
// and step must be the values returned by EditScan for the same run.
// With steps+1 expected scan points, any other number of energies is
// an error unless lenient is set, in which case the shorter of the
// two sequences wins.
func WriteEnergies(w io.Writer, min, step float64, steps int,
	energies []float64, lenient bool) error {
	if len(energies) != steps+1 {
		if !lenient {
			return ErrEnergyCount
		}
		log.Printf("expected %d energies, found %d\n",
			steps+1, len(energies))
	}
	nw := bufio.NewWriter(w)
	for i := 0; i <= steps && i < len(energies); i++ {
		fmt.Fprintf(nw, "%.8f %.8f\n",
			min+float64(i)*step, energies[i])
	}
	return nw.Flush()
}

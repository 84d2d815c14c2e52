package main

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// RunGaussian runs the engine command with stdin redirected from the
// deck at infile and stdout to the log at outfile. The call blocks
// until the engine exits; a nonzero exit is returned as the error,
// but the log still decides success via CheckLog.
func RunGaussian(command, infile, outfile string) error {
	f, err := os.Open(infile)
	if err != nil {
		return err
	}
	defer f.Close()
	of, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer of.Close()
	cmd := exec.Command(command)
	cmd.Stdin = f
	cmd.Stdout = of
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// MakeName builds a molecular formula label from a geometry block,
// skipping the leading charge/multiplicity line and any variable
// definitions
func MakeName(geom []string) (name string) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, line := range geom[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 2 {
			if _, err := strconv.ParseFloat(fields[1], 64); err == nil {
				continue
			}
		}
		sym := strings.TrimRight(fields[0], "0123456789")
		if counts[sym] == 0 {
			order = append(order, sym)
		}
		counts[sym]++
	}
	for _, sym := range order {
		name += sym
		if counts[sym] > 1 {
			name += strconv.Itoa(counts[sym])
		}
	}
	if name == "" {
		name = "mol"
	}
	return
}

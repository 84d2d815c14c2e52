package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotEnergies writes a line plot of the scan curve to filename. The
// two slices are paired up to the length of the shorter one.
func PlotEnergies(filename string, dists, energies []float64) error {
	n := len(dists)
	if len(energies) < n {
		n = len(energies)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = dists[i]
		pts[i].Y = energies[i]
	}
	p := plot.New()
	p.X.Label.Text = "R (Å)"
	p.Y.Label.Text = "E (eV)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

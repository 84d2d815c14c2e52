package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
)

// Flags
var (
	gauss = flag.String("gauss", "",
		"override the engine command from the config file")
	lenient = flag.Bool("lenient", false,
		"skip malformed energies and truncate short energy lists instead of aborting")
	doplot = flag.Bool("plot", false,
		"write a PNG of the scan curve next to the energy file")
	debug = flag.Bool("debug", false, "toggle debugging information")
)

// Errors
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrMalformedGeom     = errors.New("geometry file does not match the expected layout")
	ErrBlankGeometry     = errors.New("no geometry block found")
	ErrBlankBasis        = errors.New("no basis set block found")
	ErrCoordNotFound     = errors.New("scan coordinate not found in deck")
	ErrGaussianFailed    = errors.New("Gaussian did not terminate normally")
	ErrStructureNotFound = errors.New("converged structure not found in log")
	ErrEnergyNotFound    = errors.New("no energies found in log")
	ErrEnergyNotParsed   = errors.New("energy value failed to parse")
	ErrEnergyCount       = errors.New("wrong number of energies for scan")
)

func main() {
	flag.Parse()
	infile := "scan.toml"
	if args := flag.Args(); len(args) > 0 {
		infile = args[0]
	}
	conf, err := LoadConfig(infile)
	if err != nil {
		log.Fatalf("%s: %v", infile, err)
	}
	if *gauss != "" {
		conf.Gauss = *gauss
	}

	title, geom, err := LoadGeom(conf.GeomFile)
	if err != nil {
		log.Fatalf("%s: %v", conf.GeomFile, err)
	}
	basis, err := LoadBasis(conf.BasisFile)
	if err != nil {
		log.Fatalf("%s: %v", conf.BasisFile, err)
	}
	// catch a bad coordinate name before burning an optimization run
	if !hasCoord(geom, conf.Coord) {
		log.Fatalf("%s: %v", conf.GeomFile, ErrCoordNotFound)
	}
	name := conf.Name
	if name == "" {
		name = MakeName(geom)
	}
	fmt.Printf("scanning %s of %s over [%g, %g] in %d steps\n",
		conf.Coord, name, conf.LBound, conf.UBound, conf.Steps)

	err = WriteCom("opt.com", Header{
		Name:    "opt",
		NumCPUs: conf.NumCPUs,
		Mem:     conf.Mem,
		Route:   conf.OptRoute,
		Title:   title,
	}, geom, basis)
	if err != nil {
		log.Fatalf("opt.com: %v", err)
	}
	fmt.Println("running optimization")
	if err := RunGaussian(conf.Gauss, "opt.com", "opt.log"); err != nil {
		log.Fatalf("optimization: %v", err)
	}
	if err := CheckLog("opt.log"); err != nil {
		log.Fatalf("optimization: %v", err)
	}
	zmat, err := ParseZmat("opt.log")
	if err != nil {
		log.Fatalf("opt.log: %v", err)
	}
	if *debug {
		fmt.Printf("converged structure:\n%q\n", zmat)
	}

	// the scan deck reuses the charge/multiplicity line from the
	// input geometry
	scanGeom := append([]string{geom[0]}, zmat...)
	err = WriteCom("scan.com", Header{
		Name:    "scan",
		NumCPUs: conf.NumCPUs,
		Mem:     conf.Mem,
		Route:   conf.ScanRoute,
		Title:   title,
	}, scanGeom, basis)
	if err != nil {
		log.Fatalf("scan.com: %v", err)
	}
	min, step, err := EditScan("scan.com", conf.Coord,
		conf.LBound, conf.UBound, conf.Steps)
	if err != nil {
		log.Fatalf("scan.com: %v", err)
	}
	fmt.Printf("scan directive: start %.8f, %d steps of %v\n",
		min, conf.Steps, step)
	fmt.Println("running scan")
	if err := RunGaussian(conf.Gauss, "scan.com", "scan.log"); err != nil {
		log.Fatalf("scan: %v", err)
	}
	if err := CheckLog("scan.log"); err != nil {
		log.Fatalf("scan: %v", err)
	}

	traj, err := ParseTraj("scan.log")
	if err != nil {
		log.Fatalf("scan.log: %v", err)
	}
	trajFile := "traj_" + name + ".xyz"
	if err := WriteFile(trajFile, traj); err != nil {
		log.Fatalf("%s: %v", trajFile, err)
	}

	energies, err := ParseEnergies("scan.log", *lenient)
	if err != nil {
		log.Fatalf("scan.log: %v", err)
	}
	energyFile := "energy_" + name + ".dat"
	ef, err := os.Create(energyFile)
	if err != nil {
		log.Fatalf("%s: %v", energyFile, err)
	}
	err = WriteEnergies(ef, min, step, conf.Steps, energies, *lenient)
	ef.Close()
	if err != nil {
		log.Fatalf("%s: %v", energyFile, err)
	}

	dists := make([]float64, 0, conf.Steps+1)
	for i := 0; i <= conf.Steps && i < len(energies); i++ {
		dists = append(dists, min+float64(i)*step)
	}
	lo := floats.MinIdx(energies[:len(dists)])
	fmt.Printf("wrote %s and %s\n", trajFile, energyFile)
	fmt.Printf("minimum %.8f eV at R = %.8f\n", energies[lo], dists[lo])
	if *doplot {
		plotFile := "energy_" + name + ".png"
		if err := PlotEnergies(plotFile, dists, energies); err != nil {
			log.Fatalf("%s: %v", plotFile, err)
		}
		fmt.Printf("wrote %s\n", plotFile)
	}
}

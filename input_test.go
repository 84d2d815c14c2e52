package main

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"testing"
)

func TestWriteInput(t *testing.T) {
	var buf bytes.Buffer
	geom := []string{
		"0 1",
		"O",
		"H 1 B1",
		"H 1 B2 2 A1",
		"",
		"B1 0.96000000",
		"B2 0.96000000",
		"A1 104.50000000",
	}
	basis := []string{"", "O 0", "****", ""}
	err := WriteInput(&buf, Header{
		Name:    "opt",
		NumCPUs: 4,
		Mem:     1000,
		Route:   "#P UMP2/gen opt=Z-Matrix",
		Title:   "water bond scan",
	}, geom, basis)
	if err != nil {
		t.Fatal(err)
	}
	want := `%chk=opt.chk
%nprocs=4
%mem=1000mb
#P UMP2/gen opt=Z-Matrix

water bond scan

0 1
O
H 1 B1
H 1 B2 2 A1

B1 0.96000000
B2 0.96000000
A1 104.50000000

O 0
****

`
	if got := buf.String(); got != want {
		t.Errorf("got\n%#+v, wanted\n%#+v\n", got, want)
	}
}

func scanDeck() []string {
	return []string{
		"%chk=scan.chk",
		"#P UMP2/gen scan",
		"",
		"title",
		"",
		"0 1",
		"H",
		"H 1 B4",
		"",
		"B41 2.00000000",
		"B4 1.40000000",
		"",
	}
}

func TestEditScan(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "scan.com")
	if err := WriteFile(deck, scanDeck()); err != nil {
		t.Fatal(err)
	}
	min, step, err := EditScan(deck, "B4", 0.7, 1.75, 105)
	if err != nil {
		t.Fatal(err)
	}
	wmin := 1.4 * 0.7
	wstep := (1.4*1.75 - 1.4*0.7) / 105
	if math.Abs(min-wmin) > 1e-14 || math.Abs(step-wstep) > 1e-14 {
		t.Errorf("got (%v, %v), wanted (%v, %v)\n",
			min, step, wmin, wstep)
	}
	got, err := ReadFile(deck)
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf(" B4   0.98000000   105   %v", step)
	if got[10] != want {
		t.Errorf("got %q, wanted %q\n", got[10], want)
	}
	// B41 is a different coordinate and must be untouched
	if got[9] != "B41 2.00000000" {
		t.Errorf("B41 line rewritten to %q\n", got[9])
	}
}

// the same bounds on a fresh deck must give identical scan parameters
func TestEditScanDeterministic(t *testing.T) {
	dir := t.TempDir()
	var mins, steps [2]float64
	for i := range mins {
		deck := filepath.Join(dir, fmt.Sprintf("scan%d.com", i))
		if err := WriteFile(deck, scanDeck()); err != nil {
			t.Fatal(err)
		}
		var err error
		mins[i], steps[i], err = EditScan(deck, "B4", 0.7, 1.75, 105)
		if err != nil {
			t.Fatal(err)
		}
	}
	if mins[0] != mins[1] || steps[0] != steps[1] {
		t.Errorf("got (%v, %v), wanted (%v, %v)\n",
			mins[1], steps[1], mins[0], steps[0])
	}
}

func TestHasCoord(t *testing.T) {
	deck := scanDeck()
	tests := []struct {
		coord string
		want  bool
	}{
		{"B4", true},
		{"B41", true},
		{"B7", false},
		{"H", false},
	}
	for _, test := range tests {
		if got := hasCoord(deck, test.coord); got != test.want {
			t.Errorf("hasCoord(%q) = %v, wanted %v\n",
				test.coord, got, test.want)
		}
	}
}

func TestEditScanMissing(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "scan.com")
	if err := WriteFile(deck, scanDeck()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := EditScan(deck, "B7", 0.7, 1.75, 105); err != ErrCoordNotFound {
		t.Errorf("got %v, wanted %v\n", err, ErrCoordNotFound)
	}
}

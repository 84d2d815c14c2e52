package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lines.txt")
	want := []string{"one", "", " two ", "three"}
	if err := WriteFile(name, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}

func TestBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   \t", true},
		{" B4 1.4", false},
	}
	for _, test := range tests {
		if got := blank(test.line); got != test.want {
			t.Errorf("blank(%q) = %v, wanted %v\n",
				test.line, got, test.want)
		}
	}
}

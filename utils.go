package main

import (
	"os"
	"strings"
)

// ReadFile reads filename and splits it into lines, dropping the
// final newline
func ReadFile(filename string) ([]string, error) {
	byts, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(string(byts), "\n"), "\n"), nil
}

// WriteFile joins lines with newlines and writes them to filename
func WriteFile(filename string, lines []string) error {
	return os.WriteFile(filename,
		[]byte(strings.Join(lines, "\n")+"\n"), 0644)
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

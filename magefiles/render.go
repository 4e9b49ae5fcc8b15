package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Render builds the CLI and renders the newest dataset in data/.
func Render() error {
	mg.Deps(Build)

	dataset, err := newestDataset("data")
	if err != nil {
		return err
	}
	return sh.RunV(filepath.Join(binDir, binName), "render", "--data", dataset)
}

// newestDataset returns the lexically last .jsonl file in dir. Dataset
// names start with the date, so lexical order is date order.
func newestDataset(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".jsonl" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no .jsonl datasets in %s", dir)
	}

	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}

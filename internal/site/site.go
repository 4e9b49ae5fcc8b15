// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site locates where digests are published and writes them there.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// dateFormat is the digest date layout.
const dateFormat = "2006-01-02"

// timeNow is swapped in tests to pin the fallback date.
var timeNow = time.Now

// ResolveOutputDir returns the directory digests are written to, creating
// it if needed. An explicit OutputDir wins; otherwise the site root is
// probed for _posts, then docs, falling back to a new md directory.
func ResolveOutputDir(cfg types.SiteConfig) (string, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = detectOutputDir(siteRoot(cfg))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return dir, nil
}

func siteRoot(cfg types.SiteConfig) string {
	if cfg.Root == "" {
		return "."
	}
	return cfg.Root
}

// detectOutputDir picks the conventional publishing directory under root.
func detectOutputDir(root string) string {
	for _, name := range []string{"_posts", "docs"} {
		dir := filepath.Join(root, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Join(root, "md")
}

// DeriveDate extracts the digest date from the dataset file name. The first
// ten characters of the base name without its extension must form a strict
// YYYY-MM-DD date; anything else falls back to the current UTC date.
func DeriveDate(dataPath string) string {
	stem := strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))
	candidate := stem
	if len(stem) > 10 {
		candidate = stem[:10]
	}
	if _, err := time.Parse(dateFormat, candidate); err == nil {
		return candidate
	}
	return timeNow().UTC().Format(dateFormat)
}

// OutputFileName returns the digest file name for a date. A _posts
// directory gets the Jekyll post naming convention.
func OutputFileName(dir, date string) string {
	if filepath.Base(dir) == "_posts" {
		return date + "-arxiv-daily.md"
	}
	return date + ".md"
}

// WriteFile writes data to path through a temporary file in the same
// directory renamed into place, so no partially written digest can be
// observed.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".digest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing digest: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

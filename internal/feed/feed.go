// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed reads line-delimited JSON datasets of annotated papers.
package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// maxLineBytes caps the scanner token size. Annotated records carry full
// abstracts and summaries, so a line can run well past bufio's 64 KiB
// default.
const maxLineBytes = 8 * 1024 * 1024

// Result holds the outcome of reading a dataset.
type Result struct {
	// Records are the parsed values in input order, one per surviving line.
	// A non-object line contributes a nil Record.
	Records []types.Record

	// Skipped counts malformed lines dropped with a warning.
	Skipped int
}

// Total returns the number of non-blank lines processed.
func (r Result) Total() int {
	return len(r.Records) + r.Skipped
}

// ReadAll reads every record from the JSONL file at path. Blank lines are
// skipped silently. A line that does not hold exactly one valid JSON value
// is reported to warn with its 1-based line number and dropped; reading
// continues. A non-object value stays in the sequence as a nil Record, which
// downstream lookups treat as an empty mapping. Only an unreadable file is
// an error.
func ReadAll(path string, warn io.Writer) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var res Result
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			fmt.Fprintf(warn, "warning: bad JSON at line %d: %v\n", lineNo, err)
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("reading dataset: %w", err)
	}
	return res, nil
}

// parseLine decodes one JSON value. Numbers keep their literal form so
// numeric identifiers are not reformatted. Trailing data after the value
// makes the whole line malformed.
func parseLine(line string) (types.Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	if m, ok := v.(map[string]any); ok {
		return types.Record(m), nil
	}
	return nil, nil
}

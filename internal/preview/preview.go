// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview converts a rendered digest into a standalone HTML
// page for checking layout before the site picks the file up.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// FrontMatter mirrors the header block of a rendered digest.
type FrontMatter struct {
	Title  string   `yaml:"title"`
	Date   string   `yaml:"date"`
	Layout string   `yaml:"layout"`
	Tags   []string `yaml:"tags"`
}

const pageTemplate = `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
h3 { margin-top: 2rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// Render strips the front matter from a digest document and converts
// the Markdown body into a complete HTML page.
func Render(digest string) (string, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(digest), &fm)
	if err != nil {
		return "", fmt.Errorf("parsing front matter: %w", err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	title := fm.Title
	if title == "" {
		title = "arXiv digest"
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String()), nil
}

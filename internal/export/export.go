// Package export serializes analysis reports for download and sharing.
//
// JSON is the canonical form and round-trips through DecodeJSON. YAML,
// Markdown and HTML are one-way renderings for humans and other tools.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat resolves a format name. Empty means JSON; "yml" and "md" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json, yaml, markdown or html)", name)
	}
}

// Extension is the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "json"
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}

// FileName is the suggested download name: brief-analysis-<unix millis>.<ext>.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("brief-analysis-%d.%s", now.UnixMilli(), f.Extension())
}

// Encode renders the analysis in the given format. The title heads the
// Markdown and HTML renderings and is ignored by JSON and YAML.
func Encode(f Format, title string, a analyzer.ProjectAnalysis) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(a)
	case FormatYAML:
		out, err := yaml.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
		return out, nil
	case FormatMarkdown:
		return []byte(Markdown(title, a)), nil
	case FormatHTML:
		return HTML(title, a), nil
	default:
		return nil, fmt.Errorf("export: unsupported format %q", f)
	}
}

// EncodeJSON is the indented JSON form of the analysis.
func EncodeJSON(a analyzer.ProjectAnalysis) ([]byte, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: json: %w", err)
	}
	return out, nil
}

// DecodeJSON parses a report produced by EncodeJSON.
func DecodeJSON(data []byte) (analyzer.ProjectAnalysis, error) {
	var a analyzer.ProjectAnalysis
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&a); err != nil {
		return analyzer.ProjectAnalysis{}, fmt.Errorf("export: decode json: %w", err)
	}
	return a, nil
}

// HTML renders the Markdown report as a standalone page.
func HTML(title string, a analyzer.ProjectAnalysis) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: reportTitle(title),
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(Markdown(title, a)), p, renderer)
}

func reportTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Brief analysis"
	}
	return title
}

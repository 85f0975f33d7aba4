package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/rivo/tview"
	"github.com/yosssi/gohtml"
)

// Content types understood by the formatter
const (
	TypeText       = "text"
	TypeJSON       = "json"
	TypeHTML       = "html"
	TypeXML        = "xml"
	TypeJavaScript = "javascript"
	TypeCSS        = "css"
)

var (
	xmlElementPattern  = regexp.MustCompile(`^<[a-zA-Z][^>]*>.*</[a-zA-Z][^>]*>$`)
	htmlElementPattern = regexp.MustCompile(`<(div|span|p|body|head|script|style|link|meta)\b[^>]*>`)

	jsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(function|var|let|const|class|import|export)\b`),
		regexp.MustCompile(`\b(console|window|document)\.[a-zA-Z]`),
		regexp.MustCompile(`=>\s*[{(]`),
		regexp.MustCompile(`\.(getElementById|addEventListener|querySelector)`),
	}
	cssPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[.#]?[a-zA-Z][\w-]*\s*\{[^}]*\}`),
		regexp.MustCompile(`@(media|import|keyframes|font-face)\b`),
	}

	// highlighting
	bracePattern      = regexp.MustCompile(`([{}])`)
	jsonKeyPattern    = regexp.MustCompile(`"([^"]+)"(\s*:)`)
	jsonStringPattern = regexp.MustCompile(`:\s*"([^"]*)"`)
	jsonNumberPattern = regexp.MustCompile(`:\s*(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)`)
	jsonLitPattern    = regexp.MustCompile(`:\s*(true|false|null)`)
	xmlDeclPattern    = regexp.MustCompile(`(<\?[^>]*\?>)`)
	openTagPattern    = regexp.MustCompile(`(<[^/>]+>)`)
	closeTagPattern   = regexp.MustCompile(`(</[^>]+>)`)
	attrNamePattern   = regexp.MustCompile(`\s(\w+)="`)
	attrValuePattern  = regexp.MustCompile(`="([^"]*)"`)
	commentPattern    = regexp.MustCompile(`(<!--.*?-->)`)
)

// ContentFormatter detects, pretty-prints and highlights text before it is copied
type ContentFormatter struct{}

// NewContentFormatter creates a new content formatter
func NewContentFormatter() *ContentFormatter {
	return &ContentFormatter{}
}

// DetectContentType detects content type from content and an optional MIME type
func (f *ContentFormatter) DetectContentType(content, mimeType string) string {
	if mimeType != "" {
		lowerMime := strings.ToLower(mimeType)
		switch {
		case strings.Contains(lowerMime, "json"):
			return TypeJSON
		case strings.Contains(lowerMime, "html"):
			return TypeHTML
		case strings.Contains(lowerMime, "javascript") || strings.Contains(lowerMime, "ecmascript"):
			return TypeJavaScript
		case strings.Contains(lowerMime, "css"):
			return TypeCSS
		case strings.Contains(lowerMime, "xml"):
			return TypeXML
		}
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return TypeText
	}

	switch detected := http.DetectContentType([]byte(trimmed)); {
	case strings.Contains(detected, "text/html"):
		return TypeHTML
	case strings.Contains(detected, "text/xml") || strings.Contains(detected, "application/xml"):
		return TypeXML
	}

	if (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
		if json.Valid([]byte(trimmed)) {
			return TypeJSON
		}
	}

	if strings.HasPrefix(trimmed, "<?xml") {
		return TypeXML
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") || htmlElementPattern.MatchString(lower) {
		return TypeHTML
	}
	if xmlElementPattern.MatchString(strings.ReplaceAll(trimmed, "\n", "")) && wellFormedXML(trimmed) {
		return TypeXML
	}

	for _, pattern := range jsPatterns {
		if pattern.MatchString(trimmed) {
			return TypeJavaScript
		}
	}
	for _, pattern := range cssPatterns {
		if pattern.MatchString(trimmed) {
			return TypeCSS
		}
	}
	return TypeText
}

// Pretty re-indents content of the given type. Content that does not parse
// is returned unchanged, so it is always safe to copy the result.
func (f *ContentFormatter) Pretty(content, contentType string) string {
	switch contentType {
	case TypeJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(strings.TrimSpace(content)), "", "  "); err != nil {
			return content
		}
		return buf.String()
	case TypeHTML:
		return gohtml.Format(content)
	case TypeXML:
		formatted := xmlfmt.FormatXML(content, "", "  ")
		return strings.TrimLeft(strings.ReplaceAll(formatted, "\r\n", "\n"), "\n")
	case TypeJavaScript:
		return indentBraces(content)
	}
	return content
}

// AutoPretty detects the content type and pretty-prints accordingly
func (f *ContentFormatter) AutoPretty(content string) (string, string) {
	contentType := f.DetectContentType(content, "")
	return f.Pretty(content, contentType), contentType
}

// FormatContent pretty-prints, escapes and adds tview colour tags for on-screen previews
func (f *ContentFormatter) FormatContent(content, contentType string) string {
	if content == "" {
		return "[dim]No content[white]"
	}

	// Escape first so bracketed user text is not read as colour tags.
	// The patterns below never match the brackets Escape adds.
	pretty := tview.Escape(f.Pretty(content, contentType))
	switch contentType {
	case TypeJSON:
		result := bracePattern.ReplaceAllString(pretty, `[blue]$1[white]`)
		result = jsonKeyPattern.ReplaceAllString(result, `[cyan]"$1"[white]$2`)
		result = jsonStringPattern.ReplaceAllString(result, `: [green]"$1"[white]`)
		result = jsonNumberPattern.ReplaceAllString(result, `: [yellow]$1[white]`)
		return jsonLitPattern.ReplaceAllString(result, `: [magenta]$1[white]`)
	case TypeHTML, TypeXML:
		result := xmlDeclPattern.ReplaceAllString(pretty, `[magenta]$1[white]`)
		result = openTagPattern.ReplaceAllString(result, `[blue]$1[white]`)
		result = closeTagPattern.ReplaceAllString(result, `[blue]$1[white]`)
		result = attrNamePattern.ReplaceAllString(result, ` [cyan]$1[white]="`)
		result = attrValuePattern.ReplaceAllString(result, `="[green]$1[white]"`)
		return commentPattern.ReplaceAllString(result, `[dim]$1[white]`)
	}
	return pretty
}

// wellFormedXML reports whether content tokenizes as XML
func wellFormedXML(content string) bool {
	d := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := d.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}

// indentBraces provides basic indentation for brace-delimited code
func indentBraces(code string) string {
	lines := strings.Split(code, "\n")
	formatted := make([]string, 0, len(lines))
	indentLevel := 0

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			formatted = append(formatted, "")
			continue
		}

		if strings.HasPrefix(trimmedLine, "}") || strings.HasPrefix(trimmedLine, "]") || strings.HasPrefix(trimmedLine, ")") {
			if indentLevel > 0 {
				indentLevel--
			}
		}

		formatted = append(formatted, strings.Repeat("  ", indentLevel)+trimmedLine)

		if strings.HasSuffix(trimmedLine, "{") || strings.HasSuffix(trimmedLine, "[") || strings.HasSuffix(trimmedLine, "(") {
			indentLevel++
		}
	}

	return strings.Join(formatted, "\n")
}

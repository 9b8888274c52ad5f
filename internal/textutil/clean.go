// Package textutil provides the text normalization helpers used when
// mapping raw source payloads into domain records: entity unescaping,
// markup stripping and scanlator attribution formatting.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	// Paired bracket markup as used by the source's description fields,
	// e.g. [b]...[/b], [url=...]...[/url] and the [*] list bullet. Only
	// the markers are removed; the enclosed text is kept.
	bracketTagRe = regexp.MustCompile(`\[/?[a-zA-Z]+(?:=[^\]]*)?\]|\[\*\]`)

	lineBreakTagRe  = regexp.MustCompile(`(?i)<\s*(?:br|hr)\s*/?\s*>`)
	horizontalWsRe  = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankLineRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes a short text field (title, author, artist): HTML
// entities are unescaped, whitespace runs collapse to a single space and
// the result is NFC-normalized.
func Clean(s string) string {
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFC.String(s)
}

// CleanDescription normalizes a description field. Descriptions may carry
// bracket markup and stray HTML; both are stripped while their text
// content is preserved. Paragraph breaks survive as at most one blank
// line.
func CleanDescription(s string) string {
	s = bracketTagRe.ReplaceAllString(s, "")
	s = lineBreakTagRe.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		} else {
			s = html.UnescapeString(s)
		}
	}

	s = horizontalWsRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLineRunsRe.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	return norm.NFC.String(s)
}

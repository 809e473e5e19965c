// Package markdown renders the small markdown subset used in project
// descriptions.
package markdown

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Bullet is the glyph prefixed to list lines.
const Bullet = "•"

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// RenderSubset converts exactly three constructs: **bold** to <strong>,
// a blank line to a paragraph break and a line starting with "- " to a
// bulleted fragment. Nothing else is interpreted, so richer markdown keeps
// its literal characters.
//
// The input is HTML-escaped before the rules run.
func RenderSubset(text string) template.HTML {
	escaped := html.EscapeString(text)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")

	paragraphs := strings.Split(escaped, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = renderParagraph(p)
	}
	return template.HTML("<p>" + strings.Join(paragraphs, "</p><p>") + "</p>")
}

func renderParagraph(p string) string {
	lines := strings.Split(p, "\n")
	var b strings.Builder
	for i, line := range lines {
		bullet := strings.HasPrefix(line, "- ")
		if i > 0 {
			if bullet {
				b.WriteString("<br>")
			} else {
				b.WriteString("\n")
			}
		}
		if bullet {
			b.WriteString(Bullet + " " + strings.TrimPrefix(line, "- "))
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

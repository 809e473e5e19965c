// Package placeholder generates the stand-in images shown when a profile
// photo or project image fails to load.
package placeholder

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Background = "#0A192F"
	Foreground = "#64FFDA"

	// MaxSide bounds the generated image in either dimension.
	MaxSide = 2000
)

// URL addresses the placeholder for text at the given size.
func URL(text string, width, height int) string {
	v := url.Values{}
	v.Set("text", text)
	v.Set("w", strconv.Itoa(width))
	v.Set("h", strconv.Itoa(height))
	return "/placeholder?" + v.Encode()
}

// Initials returns the upper-cased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Size clamps a requested dimension to [1, MaxSide], using def when the
// value is missing or not a number.
func Size(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return min(n, MaxSide)
}

// SVG renders a solid placeholder with text centered on it.
func SVG(text string, width, height int) []byte {
	fontSize := max(min(width, height)/8, 12)
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<text x="50%%" y="50%%" fill="%s" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`+
			`</svg>`,
		width, height, width, height, Background, Foreground, fontSize, html.EscapeString(text)))
}

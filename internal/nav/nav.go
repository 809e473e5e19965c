// Package nav lists the page sections and resolves scroll targets.
package nav

import "strings"

// Section is an anchor on the single page.
type Section struct {
	ID    string
	Label string
}

// Href is the in-page anchor for the section.
func (s Section) Href() string { return "#" + s.ID }

// DefaultSections are the page sections in render order.
var DefaultSections = []Section{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "portfolio", Label: "Projects"},
	{ID: "resume", Label: "Resume"},
	{ID: "contact", Label: "Contact"},
}

// Registry resolves section identifiers.
type Registry struct {
	sections []Section
	index    map[string]int
}

// NewRegistry builds a registry over sections.
func NewRegistry(sections []Section) *Registry {
	index := make(map[string]int, len(sections))
	for i, s := range sections {
		index[s.ID] = i
	}
	return &Registry{sections: sections, index: index}
}

// Sections returns the sections in order.
func (r *Registry) Sections() []Section {
	return append([]Section(nil), r.sections...)
}

// Resolve finds the section for target, given as "id" or "#id". An
// unknown target resolves to nothing; callers treat that as a no-op.
func (r *Registry) Resolve(target string) (Section, bool) {
	i, ok := r.index[strings.TrimPrefix(target, "#")]
	if !ok {
		return Section{}, false
	}
	return r.sections[i], true
}

// ScrollButton is a button that smooth-scrolls to a section.
type ScrollButton struct {
	Label  string
	Target string
}

// Buttons builds scroll buttons for the given label/target pairs, dropping
// any whose target does not resolve.
func (r *Registry) Buttons(pairs ...[2]string) []ScrollButton {
	var out []ScrollButton
	for _, p := range pairs {
		s, ok := r.Resolve(p[1])
		if !ok {
			continue
		}
		out = append(out, ScrollButton{Label: p[0], Target: s.Href()})
	}
	return out
}

// Package portfolio builds the project gallery and owns the project detail
// modal state.
package portfolio

import (
	"fmt"
	"html/template"

	"github.com/snackashi/portfolio/internal/content"
	"github.com/snackashi/portfolio/internal/markdown"
	"github.com/snackashi/portfolio/internal/placeholder"
)

// CardTagLimit is how many tech tags a gallery card shows.
const CardTagLimit = 4

// Card is the gallery view of a project.
type Card struct {
	content.Project
	Tags          []string
	Hidden        int
	ImageFallback string
}

// NewCard builds the card for p, truncating tech tags to CardTagLimit.
func NewCard(p content.Project) Card {
	tags := p.Tech
	hidden := 0
	if len(tags) > CardTagLimit {
		hidden = len(tags) - CardTagLimit
		tags = tags[:CardTagLimit]
	}
	return Card{
		Project:       p,
		Tags:          tags,
		Hidden:        hidden,
		ImageFallback: placeholder.URL(p.Title, 600, 300),
	}
}

// Cards builds cards for projects, keeping their order.
func Cards(projects []content.Project) []Card {
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewCard(p))
	}
	return cards
}

// MoreLabel is the "+N more" indicator, empty when every tag fits.
func (c Card) MoreLabel() string {
	if c.Hidden == 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", c.Hidden)
}

// Modal is the detail view of a project. It lists every tech tag.
type Modal struct {
	content.Project
	Description   template.HTML
	ImageFallback string
}

// NewModal builds the detail view for p.
func NewModal(p content.Project) Modal {
	return Modal{
		Project:       p,
		Description:   markdown.RenderSubset(p.DescriptionMD),
		ImageFallback: placeholder.URL(p.Title, 800, 300),
	}
}

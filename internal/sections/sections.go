// Package sections turns content records into the view models the page
// templates render. Every builder is a pure function of the store.
package sections

import (
	"html/template"
	"strings"

	"github.com/snackashi/portfolio/internal/content"
	"github.com/snackashi/portfolio/internal/nav"
	"github.com/snackashi/portfolio/internal/placeholder"
)

type Hero struct {
	Name          string
	Tagline       string
	Image         string
	ImageFallback string
	Buttons       []nav.ScrollButton
}

type About struct {
	Bio        string
	Interests  []string
	LookingFor []string
	Skills     []string
}

// ContactMethod is one clickable way to reach the owner. External methods
// open in a new browsing context without an opener reference.
type ContactMethod struct {
	Label    string
	Value    string
	Href     string
	External bool
}

// Link is Href typed for templates, which would otherwise reject the
// tel: scheme.
func (m ContactMethod) Link() template.URL {
	return template.URL(m.Href)
}

type Contact struct {
	Methods []ContactMethod
}

type Resume struct {
	URL        string
	FileName   string
	Highlights []content.Highlight
}

func NewHero(store *content.Store, reg *nav.Registry) Hero {
	p := store.Profile()
	return Hero{
		Name:          p.Name,
		Tagline:       p.Tagline,
		Image:         p.ProfileImage,
		ImageFallback: placeholder.URL(placeholder.Initials(p.Name), 400, 400),
		Buttons: reg.Buttons(
			[2]string{"View Portfolio", "#portfolio"},
			[2]string{"Get in Touch", "#contact"},
		),
	}
}

func NewAbout(store *content.Store) About {
	p := store.Profile()
	return About{
		Bio:        p.Bio,
		Interests:  p.Interests,
		LookingFor: p.LookingFor,
		Skills:     p.Skills,
	}
}

func NewContact(store *content.Store) Contact {
	l := store.Links()
	methods := []ContactMethod{
		{Label: "Email", Value: l.Email, Href: "mailto:" + l.Email},
		{Label: "Phone", Value: l.Phone, Href: "tel:" + telTarget(l.Phone)},
		{Label: "LinkedIn", Value: "LinkedIn Profile", Href: l.LinkedIn},
		{Label: "GitHub", Value: "GitHub Profile", Href: l.GitHub},
	}
	for i := range methods {
		methods[i].External = strings.HasPrefix(methods[i].Href, "http")
	}
	return Contact{Methods: methods}
}

func NewResume(store *content.Store) Resume {
	return Resume{
		URL:        store.Links().ResumeURL,
		FileName:   store.ResumeFileName(),
		Highlights: store.Profile().Highlights,
	}
}

// telTarget strips the display formatting from a phone number.
func telTarget(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, phone)
}

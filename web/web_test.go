package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html",
		"portfolio-modal.html",
		"resume-viewer.html",
		"contact-success.html",
		"contact-error.html",
		"admin-login.html",
		"admin-dashboard.html",
		"admin-error.html",
		"privacy.html",
	} {
		require.NotNil(t, tmpl.Lookup(name), "template %s missing", name)
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"app.js", "style.css", "resume.pdf", "images/profile.svg"} {
		_, err := fs.Stat(Static(), name)
		require.NoError(t, err, "static asset %s missing", name)
	}
}

package content

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testProfile = `{"name": "Ada Lovelace", "tagline": "t", "bio": "b", "profileImage": "/images/a.jpg",
"interests": ["engines"], "lookingFor": ["work"]}`

const testLinks = `{"email": "ada@example.com", "phone": "123", "linkedin": "https://linkedin.com/in/ada",
"github": "https://github.com/ada", "resumeURL": "/static/resume.pdf"}`

const testProjects = `[
  {"id": "a", "title": "A", "blurb": "a", "tech": ["Go"], "image": "/a.png"},
  {"id": "b", "title": "B", "blurb": "b", "tech": [], "image": "/b.png", "githubUrl": "https://github.com/ada/b"}
]`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"profile.json":  {Data: []byte(testProfile)},
		"links.json":    {Data: []byte(testLinks)},
		"projects.json": {Data: []byte(testProjects)},
	}
}

func TestDefault(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, store.Profile().Name)
	require.NotEmpty(t, store.Projects())
	require.Equal(t, "Solomon_Nackashi_Resume.pdf", store.ResumeFileName())
}

func TestLoad(t *testing.T) {
	store, err := Load(testFS())
	require.NoError(t, err)

	require.Equal(t, "Ada Lovelace", store.Profile().Name)
	require.Equal(t, DefaultSkills, store.Profile().Skills)
	require.Equal(t, "ada@example.com", store.Links().Email)

	projects := store.Projects()
	require.Len(t, projects, 2)
	require.Equal(t, "a", projects[0].ID)
	require.Equal(t, "b", projects[1].ID)
	require.Empty(t, projects[1].Tech)
}

func TestLoadYAML(t *testing.T) {
	fsys := testFS()
	delete(fsys, "profile.json")
	fsys["profile.yaml"] = &fstest.MapFile{Data: []byte(`
name: Grace Hopper
tagline: t
bio: b
profileImage: /images/g.jpg
interests: [compilers]
lookingFor: [work]
skills: [COBOL]
`)}

	store, err := Load(fsys)
	require.NoError(t, err)
	require.Equal(t, "Grace Hopper", store.Profile().Name)
	require.Equal(t, []string{"COBOL"}, store.Profile().Skills)
	require.Equal(t, "Grace_Hopper_Resume.pdf", store.ResumeFileName())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		fsys := testFS()
		delete(fsys, "links.json")
		_, err := Load(fsys)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed record", func(t *testing.T) {
		fsys := testFS()
		fsys["projects.json"] = &fstest.MapFile{Data: []byte(`[{"id": `)}
		_, err := Load(fsys)
		require.ErrorContains(t, err, "parse projects.json")
	})

	t.Run("invalid email", func(t *testing.T) {
		fsys := testFS()
		fsys["links.json"] = &fstest.MapFile{Data: []byte(`{"email": "nope", "phone": "1",
"linkedin": "https://l.example", "github": "https://g.example", "resumeURL": "/r.pdf"}`)}
		_, err := Load(fsys)
		require.ErrorContains(t, err, "invalid links")
	})

	t.Run("duplicate project id", func(t *testing.T) {
		fsys := testFS()
		fsys["projects.json"] = &fstest.MapFile{Data: []byte(`[
{"id": "a", "title": "A", "blurb": "a", "tech": [], "image": "/a.png"},
{"id": "a", "title": "B", "blurb": "b", "tech": [], "image": "/b.png"}]`)}
		_, err := Load(fsys)
		require.ErrorContains(t, err, `duplicate project id "a"`)
	})
}

func TestStoreProject(t *testing.T) {
	store, err := Load(testFS())
	require.NoError(t, err)

	p, err := store.Project("b")
	require.NoError(t, err)
	require.Equal(t, "B", p.Title)

	_, err = store.Project("missing")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestStoreIsReadOnly(t *testing.T) {
	store, err := Load(testFS())
	require.NoError(t, err)

	projects := store.Projects()
	projects[0].Title = "changed"
	projects[0].Tech[0] = "Rust"

	profile := store.Profile()
	profile.Interests[0] = "changed"

	p, err := store.Project("a")
	require.NoError(t, err)
	require.Equal(t, "A", p.Title)
	require.Equal(t, []string{"Go"}, p.Tech)
	require.Equal(t, []string{"engines"}, store.Profile().Interests)
}

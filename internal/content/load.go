package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var defaultData embed.FS

var extensions = []string{".json", ".yaml", ".yml"}

// Default loads the records bundled with the binary.
func Default() (*Store, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads records from a directory on disk. An empty dir means the
// bundled defaults.
func LoadDir(dir string) (*Store, error) {
	if dir == "" {
		return Default()
	}
	return Load(os.DirFS(dir))
}

// Load reads profile, links and projects from fsys. Each record may be JSON
// or YAML. A missing or invalid record is an error: content is build data
// and there is nothing sensible to render without it.
func Load(fsys fs.FS) (*Store, error) {
	var profile Profile
	if err := readRecord(fsys, "profile", &profile); err != nil {
		return nil, err
	}
	var links Links
	if err := readRecord(fsys, "links", &links); err != nil {
		return nil, err
	}
	var projects []Project
	if err := readRecord(fsys, "projects", &projects); err != nil {
		return nil, err
	}

	if err := validate(profile, links, projects); err != nil {
		return nil, err
	}
	return newStore(profile, links, projects), nil
}

func readRecord(fsys fs.FS, name string, out any) error {
	for _, ext := range extensions {
		data, err := fs.ReadFile(fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name+ext, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse %s: %w", name+ext, err)
		}
		return nil
	}
	return fmt.Errorf("content record %q: %w", name, fs.ErrNotExist)
}

func validate(profile Profile, links Links, projects []Project) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := v.Struct(links); err != nil {
		return fmt.Errorf("invalid links: %w", err)
	}

	seen := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("invalid project %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

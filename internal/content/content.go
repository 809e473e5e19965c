// Package content holds the three read-only records every section renders
// from: the profile, the contact links and the ordered project list.
package content

import (
	"errors"
	"slices"
	"strings"
)

// ErrProjectNotFound is returned when a project id is not in the store.
var ErrProjectNotFound = errors.New("project not found")

// Profile describes the site owner.
type Profile struct {
	Name         string      `json:"name" yaml:"name" validate:"required"`
	Tagline      string      `json:"tagline" yaml:"tagline" validate:"required"`
	Bio          string      `json:"bio" yaml:"bio" validate:"required"`
	ProfileImage string      `json:"profileImage" yaml:"profileImage" validate:"required"`
	Interests    []string    `json:"interests" yaml:"interests" validate:"required,dive,required"`
	LookingFor   []string    `json:"lookingFor" yaml:"lookingFor" validate:"required,dive,required"`
	Skills       []string    `json:"skills,omitempty" yaml:"skills,omitempty" validate:"dive,required"`
	Highlights   []Highlight `json:"highlights,omitempty" yaml:"highlights,omitempty" validate:"dive"`
}

// Highlight is one of the summary cards under the résumé viewer.
type Highlight struct {
	Title string   `json:"title" yaml:"title" validate:"required"`
	Lines []string `json:"lines" yaml:"lines" validate:"required,dive,required"`
}

// Links holds every outbound contact target.
type Links struct {
	Email          string `json:"email" yaml:"email" validate:"required,email"`
	Phone          string `json:"phone" yaml:"phone" validate:"required"`
	LinkedIn       string `json:"linkedin" yaml:"linkedin" validate:"required,url"`
	GitHub         string `json:"github" yaml:"github" validate:"required,url"`
	ResumeURL      string `json:"resumeURL" yaml:"resumeURL" validate:"required,url|startswith=/"`
	ResumeFileName string `json:"resumeFileName,omitempty" yaml:"resumeFileName,omitempty"`
}

// Project is one gallery entry. Tech order is display order.
type Project struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	Title         string   `json:"title" yaml:"title" validate:"required"`
	Blurb         string   `json:"blurb" yaml:"blurb" validate:"required"`
	DescriptionMD string   `json:"descriptionMD" yaml:"descriptionMD"`
	Tech          []string `json:"tech" yaml:"tech" validate:"dive,required"`
	Image         string   `json:"image" yaml:"image" validate:"required"`
	GithubURL     string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty" validate:"omitempty,url"`
	DemoURL       string   `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty" validate:"omitempty,url"`
}

// DefaultSkills is shown in the About section when the profile lists none.
var DefaultSkills = []string{
	"SolidWorks", "MATLAB", "Python", "C++",
	"Arduino", "ROS", "PLC Programming", "CAD Design",
	"Control Systems", "3D Printing",
}

// Store exposes the loaded records. Nothing mutates it after Load returns.
type Store struct {
	profile  Profile
	links    Links
	projects []Project
	index    map[string]int
}

func newStore(profile Profile, links Links, projects []Project) *Store {
	index := make(map[string]int, len(projects))
	for i, p := range projects {
		index[p.ID] = i
	}
	if len(profile.Skills) == 0 {
		profile.Skills = slices.Clone(DefaultSkills)
	}
	return &Store{profile: profile, links: links, projects: projects, index: index}
}

// Profile returns a copy of the profile record.
func (s *Store) Profile() Profile {
	p := s.profile
	p.Interests = slices.Clone(p.Interests)
	p.LookingFor = slices.Clone(p.LookingFor)
	p.Skills = slices.Clone(p.Skills)
	p.Highlights = slices.Clone(p.Highlights)
	return p
}

// Links returns the contact links.
func (s *Store) Links() Links {
	return s.links
}

// Projects returns the projects in display order.
func (s *Store) Projects() []Project {
	out := make([]Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.clone()
	}
	return out
}

// Project looks a project up by id.
func (s *Store) Project(id string) (Project, error) {
	i, ok := s.index[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return s.projects[i].clone(), nil
}

// ResumeFileName is the fixed name the résumé is saved under.
func (s *Store) ResumeFileName() string {
	if s.links.ResumeFileName != "" {
		return s.links.ResumeFileName
	}
	return strings.Join(strings.Fields(s.profile.Name), "_") + "_Resume.pdf"
}

func (p Project) clone() Project {
	p.Tech = slices.Clone(p.Tech)
	return p
}

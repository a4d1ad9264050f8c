// Package site describes the portfolio's content: sections, projects,
// galleries and bilingual strings.
package site

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_site.yaml
var defaultManifest []byte

// Text is a string in both UI languages.
type Text struct {
	EN string `yaml:"en"`
	FR string `yaml:"fr"`
}

type Section struct {
	ID  string  `yaml:"id"`
	Top float64 `yaml:"top"`
}

type Project struct {
	Name   string `yaml:"name"`
	Title  Text   `yaml:"title"`
	Hidden bool   `yaml:"hidden"`
	// Single is the image for projects without a gallery.
	Single string `yaml:"single"`
}

type String struct {
	ID string `yaml:"id"`
	EN string `yaml:"en"`
	FR string `yaml:"fr"`
}

type Manifest struct {
	ContentHeight float64             `yaml:"content_height"`
	Sections      []Section           `yaml:"sections"`
	Galleries     map[string][]string `yaml:"galleries"`
	Projects      []Project           `yaml:"projects"`
	Skills        []string            `yaml:"skills"`
	Strings       []String            `yaml:"strings"`
}

// Default returns the built-in manifest.
func Default() *Manifest {
	m, err := Parse(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("site: embedded manifest: %v", err))
	}
	return m
}

// Load reads a manifest from path; an empty path yields Default.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse site manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool)
	for _, s := range m.Sections {
		if s.ID == "" {
			return fmt.Errorf("section without id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, p := range m.Projects {
		if p.Name == "" {
			return fmt.Errorf("project without name")
		}
	}
	if m.ContentHeight <= 0 {
		m.ContentHeight = 1
		for _, s := range m.Sections {
			if s.Top+1 > m.ContentHeight {
				m.ContentHeight = s.Top + 1
			}
		}
	}
	return nil
}

// Section returns the section with the given id.
func (m *Manifest) Section(id string) (Section, bool) {
	for _, s := range m.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionHeight is the distance from the section's top to the next
// section's top, or to the end of the content for the last one.
func (m *Manifest) SectionHeight(id string) float64 {
	for i, s := range m.Sections {
		if s.ID != id {
			continue
		}
		if i+1 < len(m.Sections) {
			return m.Sections[i+1].Top - s.Top
		}
		return m.ContentHeight - s.Top
	}
	return 0
}

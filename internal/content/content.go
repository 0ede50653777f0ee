// Package content holds the static portfolio copy: profile, sections,
// projects and contact details. A default set is embedded in the binary and
// can be replaced by a YAML file on disk.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"folio/internal/tracker"
	"folio/internal/validation"
)

//go:embed content.yaml
var embedded []byte

// DefaultRotation is how long each hero description stays on screen.
const DefaultRotation = 3 * time.Second

type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Headline string `yaml:"headline"`
	Location string `yaml:"location"`
}

type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href"`
}

type Hero struct {
	Greeting     string        `yaml:"greeting"`
	Rotation     time.Duration `yaml:"rotation"`
	Descriptions []string      `yaml:"descriptions" validate:"min=1,dive,required"`
	Actions      []Link        `yaml:"actions" validate:"dive"`
}

type Highlight struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type About struct {
	Title      string      `yaml:"title"`
	Summary    string      `yaml:"summary"`
	Paragraphs []string    `yaml:"paragraphs"`
	Quote      string      `yaml:"quote"`
	Highlights []Highlight `yaml:"highlights" validate:"dive"`
}

type Education struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
	Location    string `yaml:"location"`
	Period      string `yaml:"period"`
	Grade       string `yaml:"grade"`
	Description string `yaml:"description"`
	Current     bool   `yaml:"current"`
}

type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

type SkillCategory struct {
	Title  string  `yaml:"title" validate:"required"`
	Skills []Skill `yaml:"skills" validate:"dive"`
}

type Project struct {
	Title        string   `yaml:"title" validate:"required"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Repository   string   `yaml:"repository"`
}

type Certification struct {
	Title       string   `yaml:"title" validate:"required"`
	Issuer      string   `yaml:"issuer" validate:"required"`
	Year        string   `yaml:"year"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
	Verified    bool     `yaml:"verified"`
}

type Resume struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	FileName string `yaml:"file_name"`
}

type ContactInfo struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Href  string `yaml:"href"`
}

type Contact struct {
	Title   string        `yaml:"title"`
	Summary string        `yaml:"summary"`
	Info    []ContactInfo `yaml:"info" validate:"dive"`
}

type Footer struct {
	Blurb      string   `yaml:"blurb"`
	QuickLinks []string `yaml:"quick_links"`
	Tagline    string   `yaml:"tagline"`
}

// Content is the full static copy of the portfolio.
type Content struct {
	Profile        Profile         `yaml:"profile"`
	Hero           Hero            `yaml:"hero"`
	About          About           `yaml:"about"`
	Education      []Education     `yaml:"education" validate:"dive"`
	Skills         []SkillCategory `yaml:"skills" validate:"dive"`
	Projects       []Project       `yaml:"projects" validate:"dive"`
	Certifications []Certification `yaml:"certifications" validate:"dive"`
	Resume         Resume          `yaml:"resume"`
	Contact        Contact         `yaml:"contact"`
	Socials        []Link          `yaml:"socials" validate:"dive"`
	Footer         Footer          `yaml:"footer"`
}

// Default returns the embedded content. The embedded file is validated by
// the package tests, so a failure here is a build defect.
func Default() *Content {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("content: embedded content invalid: %v", err))
	}
	return c
}

// Load reads content from path, or returns Default when path is empty.
func Load(path string) (*Content, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields and that footer links point at known
// sections. A zero hero rotation is replaced with DefaultRotation.
func (c *Content) Validate() error {
	problems, err := validation.Struct(c)
	if err != nil {
		return err
	}
	if problems != nil {
		return fmt.Errorf("invalid content: %s", validation.Summary(problems))
	}
	if c.Hero.Rotation < 0 {
		return fmt.Errorf("invalid content: hero rotation must not be negative")
	}
	if c.Hero.Rotation == 0 {
		c.Hero.Rotation = DefaultRotation
	}
	for _, link := range c.Footer.QuickLinks {
		if _, ok := tracker.ParseSection(link, tracker.DefaultSections); !ok {
			return fmt.Errorf("invalid content: footer link %q is not a section", link)
		}
	}
	return nil
}

// Sections returns the footer links as sections.
func (f Footer) Sections() []tracker.SectionID {
	sections := make([]tracker.SectionID, 0, len(f.QuickLinks))
	for _, link := range f.QuickLinks {
		if id, ok := tracker.ParseSection(link, tracker.DefaultSections); ok {
			sections = append(sections, id)
		}
	}
	return sections
}

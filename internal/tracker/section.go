// Package tracker derives which page section is "in view" from the vertical
// geometry of the page regions, the way the navigation bar highlights it.
package tracker

import "strings"

// SectionID names one page region.
type SectionID string

const (
	Home           SectionID = "home"
	About          SectionID = "about"
	Education      SectionID = "education"
	Skills         SectionID = "skills"
	Projects       SectionID = "projects"
	Certifications SectionID = "certifications"
	Resume         SectionID = "resume"
	Testimonials   SectionID = "testimonials"
	Contact        SectionID = "contact"
)

// DefaultSections is the page order of the portfolio regions.
var DefaultSections = []SectionID{
	Home,
	About,
	Education,
	Skills,
	Projects,
	Certifications,
	Resume,
	Testimonials,
	Contact,
}

// ParseSection matches value against sections, ignoring case and a leading '#'.
func ParseSection(value string, sections []SectionID) (SectionID, bool) {
	normalized := SectionID(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "#")))
	for _, id := range sections {
		if id == normalized {
			return id, true
		}
	}
	return "", false
}

// Anchor returns the in-page link for id.
func (id SectionID) Anchor() string {
	return "#" + string(id)
}

func (id SectionID) String() string {
	return string(id)
}

// Package nav is the view model behind the navigation bar: the section links,
// which one is highlighted and whether the mobile menu overlay is open.
package nav

import (
	"sync"

	"folio/internal/tracker"
)

// Item is one entry of the navigation menu.
type Item struct {
	Label   string
	Section tracker.SectionID
}

// Href is the in-page anchor of the item.
func (i Item) Href() string {
	return i.Section.Anchor()
}

var labels = map[tracker.SectionID]string{
	tracker.Home:           "Home",
	tracker.About:          "About",
	tracker.Education:      "Education",
	tracker.Skills:         "Skills",
	tracker.Projects:       "Projects",
	tracker.Certifications: "Certifications",
	tracker.Resume:         "Resume",
	tracker.Testimonials:   "Testimonials",
	tracker.Contact:        "Contact",
}

// Label returns the display name of a section.
func Label(id tracker.SectionID) string {
	if label, ok := labels[id]; ok {
		return label
	}
	return string(id)
}

// Items returns the menu entries in page order.
func Items() []Item {
	items := make([]Item, 0, len(tracker.DefaultSections))
	for _, id := range tracker.DefaultSections {
		items = append(items, Item{Label: Label(id), Section: id})
	}
	return items
}

// Link is an Item annotated with its highlight state.
type Link struct {
	Item
	Active bool
}

// State is the value rendered into the link's data-state attribute.
func (l Link) State() string {
	return State(l.Active)
}

// Links marks the entry for active. An unknown active section leaves the first
// entry highlighted, matching the tracker's default.
func Links(active tracker.SectionID) []Link {
	items := Items()
	if _, ok := tracker.ParseSection(string(active), tracker.DefaultSections); !ok {
		active = tracker.DefaultSections[0]
	}
	links := make([]Link, len(items))
	for i, item := range items {
		links[i] = Link{Item: item, Active: item.Section == active}
	}
	return links
}

// State maps a highlight flag to "active" or "inactive".
func State(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// Menu tracks the mobile overlay. The zero value is closed.
type Menu struct {
	mu   sync.Mutex
	open bool
}

// NewMenu returns a menu in the given state.
func NewMenu(open bool) *Menu {
	return &Menu{open: open}
}

// Open shows the overlay.
func (m *Menu) Open() {
	m.set(true)
}

// Close hides the overlay.
func (m *Menu) Close() {
	m.set(false)
}

// Toggle flips the overlay and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

// IsOpen reports whether the overlay is shown.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Select follows a menu link: the overlay closes and the chosen section is
// returned as the anchor to scroll to.
func (m *Menu) Select(section tracker.SectionID) string {
	m.Close()
	return section.Anchor()
}

func (m *Menu) set(open bool) {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()
}

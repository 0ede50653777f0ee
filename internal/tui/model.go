// Package tui is the terminal rendition of the portfolio: the sections in a
// scrollable viewport under a navigation bar that follows the scroll position.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	applog "folio/internal/log"
	"folio/internal/nav"
	"folio/internal/storage"
	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/models"
)

// ReferenceRow is the viewport row a section must cover to be highlighted.
const ReferenceRow = 2

const (
	headerHeight = 2
	footerHeight = 2
)

// RotateMsg carries the next hero description.
type RotateMsg struct {
	Text string
}

// geometry is shared between the model copies bubbletea makes and the
// tracker's region callbacks.
type geometry struct {
	mu     sync.Mutex
	offset int
	doc    document
}

func (g *geometry) set(doc document, offset int) {
	g.mu.Lock()
	g.doc = doc
	g.offset = offset
	g.mu.Unlock()
}

func (g *geometry) scroll(offset int) {
	g.mu.Lock()
	g.offset = offset
	g.mu.Unlock()
}

func (g *geometry) extent(id tracker.SectionID) (tracker.Extent, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.doc.find(id)
	if !ok {
		return tracker.Extent{}, false
	}
	return tracker.Extent{
		Top:    float64(s.start - g.offset),
		Bottom: float64(s.end - 1 - g.offset),
	}, true
}

// Options configure a Model.
type Options struct {
	Content *content.Content
	Storage storage.Storage
	Width   int
	Height  int
}

// Model is the bubbletea model of the browse screen.
type Model struct {
	ctx          context.Context
	content      *content.Content
	storage      storage.Storage
	theme        *theme.Store
	testimonials []testimonials.Testimonial
	menu         *nav.Menu
	rotator      *content.Rotator
	tracker      *tracker.Tracker
	events       *tracker.Events
	geo          *geometry
	unsubscribe  func()

	viewport viewport.Model
	styles   styles
	doc      document
	active   tracker.SectionID
	restore  tracker.SectionID
	width    int
	height   int
}

// NewModel loads the visitor state from opts.Storage and lays out the page.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Storage == nil {
		return Model{}, errors.New("tui: storage is required")
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	themeStore := theme.NewStore(ctx, opts.Storage)
	restore := tracker.Home
	if raw, found, err := opts.Storage.Get(ctx, models.KeyActiveSection); err != nil {
		applog.Warn(ctx, "stored section unreadable", "error", err)
	} else if found {
		if id, ok := tracker.ParseSection(raw, tracker.DefaultSections); ok {
			restore = id
		}
	}

	geo := &geometry{}
	regions := make([]tracker.Region, 0, len(tracker.DefaultSections))
	for _, id := range tracker.DefaultSections {
		id := id
		regions = append(regions, tracker.NewRegion(id, func() (tracker.Extent, bool) {
			return geo.extent(id)
		}))
	}
	t, err := tracker.New(regions, tracker.WithReferenceLine(ReferenceRow))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:          ctx,
		content:      opts.Content,
		storage:      opts.Storage,
		theme:        themeStore,
		testimonials: testimonials.NewStore(ctx, opts.Storage).List(),
		menu:         nav.NewMenu(false),
		rotator:      content.NewRotator(opts.Content.Hero.Descriptions, opts.Content.Hero.Rotation),
		tracker:      t,
		events:       &tracker.Events{},
		geo:          geo,
		styles:       newStyles(themeStore.Get()),
		restore:      restore,
		width:        opts.Width,
		height:       opts.Height,
	}
	m.viewport = viewport.New(m.width, m.viewportHeight())
	m.layout()
	m.active = t.Mount(m.events)
	m.unsubscribe = t.Subscribe(func(id tracker.SectionID) {
		if err := opts.Storage.Set(ctx, models.KeyActiveSection, string(id)); err != nil {
			applog.Warn(ctx, "failed to store active section", "error", err)
		}
	})
	if restore != tracker.Home {
		m.jump(restore)
	}
	return m, nil
}

// Rotator exposes the hero rotator so the caller can drive it.
func (m Model) Rotator() *content.Rotator {
	return m.rotator
}

// Active returns the highlighted section.
func (m Model) Active() tracker.SectionID {
	return m.active
}

// Theme returns the current theme preference.
func (m Model) Theme() theme.Preference {
	return m.theme.Get()
}

// MenuOpen reports whether the section menu is shown.
func (m Model) MenuOpen() bool {
	return m.menu.IsOpen()
}

// Close stops tracking. It is safe to call more than once.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.tracker.Close()
}

func (m Model) viewportHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// layout re-renders the document and keeps the scroll position.
func (m *Model) layout() {
	m.doc = page{
		content:      m.content,
		testimonials: m.testimonials,
		hero:         m.rotator.Current(),
		styles:       m.styles,
		width:        m.width - 2,
		padding:      m.viewportHeight(),
	}.render()
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.doc.text)
	m.viewport.SetYOffset(offset)
	m.geo.set(m.doc, m.viewport.YOffset)
}

// sync reports the viewport position to the tracker as one scroll event.
func (m *Model) sync() {
	m.geo.scroll(m.viewport.YOffset)
	m.events.Scroll()
	m.active = m.tracker.Active()
}

// jump scrolls so the section starts at the top of the viewport.
func (m *Model) jump(id tracker.SectionID) {
	s, ok := m.doc.find(id)
	if !ok {
		return
	}
	m.viewport.SetYOffset(s.start)
	m.sync()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

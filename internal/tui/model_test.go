package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/storage"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/models"
)

func newTestModel(t *testing.T, seed map[string]string) (Model, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory(seed)
	m, err := NewModel(context.Background(), Options{Storage: mem, Width: 80, Height: 24})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, mem
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	if key == "esc" {
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	}
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Equal(t, tracker.Home, m.Active())
	assert.Equal(t, theme.Light, m.Theme())
	assert.False(t, m.MenuOpen())
	assert.Len(t, m.doc.spans, len(tracker.DefaultSections))
}

func TestNewModelRequiresStorage(t *testing.T) {
	_, err := NewModel(context.Background(), Options{})
	assert.Error(t, err)
}

func TestNumberKeysJumpToSection(t *testing.T) {
	m, mem := newTestModel(t, nil)

	m, _ = press(t, m, "4")

	assert.Equal(t, tracker.Skills, m.Active())
	skills, ok := m.doc.find(tracker.Skills)
	require.True(t, ok)
	assert.Equal(t, skills.start, m.viewport.YOffset)
	assert.Equal(t, "skills", mem.Snapshot()[models.KeyActiveSection])
	assert.Contains(t, m.View(), "Skills")
}

func TestScrollingMovesHighlight(t *testing.T) {
	m, _ := newTestModel(t, nil)

	home, ok := m.doc.find(tracker.Home)
	require.True(t, ok)

	for i := 0; i < 200 && m.Active() == tracker.Home; i++ {
		m, _ = press(t, m, "j")
	}

	assert.Equal(t, tracker.About, m.Active())
	// Home's last line has scrolled above the reference row.
	assert.Less(t, home.end-1-m.viewport.YOffset, ReferenceRow)
}

func TestRestoresStoredSection(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{models.KeyActiveSection: "projects"})

	assert.Equal(t, tracker.Projects, m.Active())
}

func TestThemeToggleRestylesAndPersists(t *testing.T) {
	m, mem := newTestModel(t, nil)
	assert.Contains(t, m.View(), "switch to dark theme")

	m, _ = press(t, m, "t")

	assert.Equal(t, theme.Dark, m.Theme())
	assert.Equal(t, "dark", mem.Snapshot()[models.KeyTheme])
	assert.Contains(t, m.View(), "switch to light theme")
}

func TestThemeToggleWithFailingStorageKeepsWorking(t *testing.T) {
	m, mem := newTestModel(t, nil)
	mem.FailWrites(true)

	m, _ = press(t, m, "t")

	assert.Equal(t, theme.Dark, m.Theme())
	assert.False(t, m.theme.Persistent())
}

func TestMenuOpensAndSelectCloses(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = press(t, m, "m")
	require.True(t, m.MenuOpen())
	assert.Contains(t, m.View(), "9  Contact")

	m, _ = press(t, m, "esc")
	assert.False(t, m.MenuOpen())

	m, _ = press(t, m, "m")
	m, _ = press(t, m, "2")
	assert.False(t, m.MenuOpen())
	assert.Equal(t, tracker.About, m.Active())
}

func TestRotateMessageShowsNextDescription(t *testing.T) {
	m, _ := newTestModel(t, nil)
	first := m.Rotator().Current()
	require.True(t, strings.Contains(m.View(), first))

	next := m.Rotator().Next()
	updated, _ := m.Update(RotateMsg{Text: next})
	m = updated.(Model)

	assert.Contains(t, m.View(), next)
}

func TestWindowResizeRelayouts(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-headerHeight-footerHeight, m.viewport.Height)
	assert.Equal(t, tracker.Home, m.Active())
}

func TestQuitStopsTracking(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.events.Scroll()
	assert.Equal(t, 0, m.events.Listeners())
}

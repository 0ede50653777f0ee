package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/tracker"
	"folio/internal/tui"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "folio", "state.json")
}

func TestThemeShowDefaultsToLight(t *testing.T) {
	out, _, err := execute(t, "--state", statePath(t), "theme", "show")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeTogglePersists(t *testing.T) {
	state := statePath(t)

	out, _, err := execute(t, "--state", state, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, _, err = execute(t, "--state", state, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	data, err := os.ReadFile(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme": "dark"`)
}

func TestThemeSet(t *testing.T) {
	state := statePath(t)

	out, _, err := execute(t, "--state", state, "theme", "set", "DARK")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, _, err = execute(t, "--state", state, "theme", "set", "sepia")
	assert.Error(t, err)
}

func TestTestimonialsAddAndList(t *testing.T) {
	state := statePath(t)

	out, _, err := execute(t, "--state", state, "testimonials", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No testimonials yet")

	for _, name := range []string{"Ada", "Grace", "Linus", "Barbara"} {
		_, _, err := execute(t, "--state", state, "testimonials", "add",
			"--name", name, "--role", "Engineer", "--review", "Great work", "--rating", "4")
		require.NoError(t, err)
	}

	out, _, err = execute(t, "--state", state, "testimonials")
	require.NoError(t, err)
	assert.Contains(t, out, "★★★★☆  Barbara, Engineer")
	assert.NotContains(t, out, "Ada")
	assert.Less(t, bytes.Index([]byte(out), []byte("Barbara")), bytes.Index([]byte(out), []byte("Grace")))
}

func TestTestimonialsAddRejectsInvalidRating(t *testing.T) {
	state := statePath(t)

	_, _, err := execute(t, "--state", state, "testimonials", "add",
		"--name", "Ada", "--role", "Engineer", "--review", "Great", "--rating", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testimonial rejected")
	assert.Contains(t, err.Error(), "rating")

	_, err = os.Stat(state)
	assert.True(t, os.IsNotExist(err), "nothing should be written for a rejected testimonial")
}

func TestStatePathDefaultsToConfigDir(t *testing.T) {
	original := userConfigDir
	t.Cleanup(func() { userConfigDir = original })
	dir := t.TempDir()
	userConfigDir = func() (string, error) { return dir, nil }

	path, err := (&rootFlags{}).resolveStatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "folio", "state.json"), path)
}

func TestBrowseRefusesWithoutTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(int) bool { return false }

	_, _, err := execute(t, "--state", statePath(t), "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestBrowseRunsProgramWithStateStorage(t *testing.T) {
	originalTerminal, originalSize, originalRun := isTerminal, terminalSize, runTUI
	t.Cleanup(func() {
		isTerminal, terminalSize, runTUI = originalTerminal, originalSize, originalRun
	})
	isTerminal = func(int) bool { return true }
	terminalSize = func(int) (int, int, error) { return 100, 30, nil }

	var received tui.Options
	runTUI = func(ctx context.Context, opts tui.Options, in io.Reader, out io.Writer) error {
		received = opts
		m, err := tui.NewModel(ctx, opts)
		if err != nil {
			return err
		}
		defer m.Close()
		if m.Active() != tracker.Home {
			t.Errorf("expected home to be active, got %s", m.Active())
		}
		return nil
	}

	state := statePath(t)
	_, _, err := execute(t, "--state", state)
	require.NoError(t, err)
	assert.Equal(t, 100, received.Width)
	assert.Equal(t, 30, received.Height)
	require.NotNil(t, received.Content)
	assert.FileExists(t, filepath.Join(filepath.Dir(state), "folio.log"))
}

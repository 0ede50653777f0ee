package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	applog "folio/internal/log"
)

// Run shows the browse screen until the user quits or ctx is cancelled.
// The hero rotation runs for the lifetime of the program.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	m, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	rotateCtx, cancel := context.WithCancel(ctx)
	done := m.Rotator().Start(rotateCtx, func(text string) {
		p.Send(RotateMsg{Text: text})
	})
	defer func() {
		cancel()
		<-done
	}()

	applog.Debug(ctx, "browse screen starting", "theme", m.Theme().String(), "active", m.Active().String())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run browse screen: %w", err)
	}
	if fm, ok := final.(Model); ok {
		applog.Debug(ctx, "browse screen closed", "active", fm.Active().String())
	}
	return nil
}

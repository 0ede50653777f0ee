package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	applog "folio/internal/log"
	"folio/internal/tui"
)

var (
	isTerminal   = term.IsTerminal
	terminalSize = term.GetSize
	runTUI       = tui.Run
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive portfolio",
		Long: `Open the portfolio in a scrollable terminal view. The navigation bar
follows the section under the reference row; t toggles the theme, m opens
the section menu, 1-9 jump to a section and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(int(os.Stdout.Fd())) {
		return errors.New("browse needs an interactive terminal; use `folio theme` or `folio testimonials` in scripts")
	}

	store, err := flags.openStorage()
	if err != nil {
		return err
	}
	c, err := flags.loadContent()
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen; keep them next to the state.
	logPath := filepath.Join(filepath.Dir(store.Path()), "folio.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	defer logFile.Close()
	applog.RedirectTo(logFile)
	defer applog.RedirectTo(cmd.ErrOrStderr())

	opts := tui.Options{Content: c, Storage: store}
	if width, height, err := terminalSize(int(os.Stdout.Fd())); err == nil {
		opts.Width, opts.Height = width, height
	}

	if err := runTUI(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, "browse failed")
	}
	return nil
}

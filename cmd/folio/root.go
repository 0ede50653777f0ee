package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"folio/internal/content"
	applog "folio/internal/log"
	"folio/internal/storage"
)

type rootFlags struct {
	statePath   string
	contentPath string
	logLevel    string
}

// userConfigDir honours XDG_CONFIG_HOME on unix systems.
var userConfigDir = os.UserConfigDir

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Browse the portfolio in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applog.RedirectTo(cmd.ErrOrStderr())
			return errors.Wrap(applog.SetLevel(flags.logLevel), "invalid --log-level")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.statePath, "state", "", "state file (default is $XDG_CONFIG_HOME/folio/state.json)")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "YAML file replacing the built-in portfolio content")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newTestimonialsCmd(flags))

	return cmd
}

func (f *rootFlags) resolveStatePath() (string, error) {
	if path := strings.TrimSpace(f.statePath); path != "" {
		return path, nil
	}
	dir, err := userConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine config directory")
	}
	return filepath.Join(dir, "folio", "state.json"), nil
}

func (f *rootFlags) openStorage() (*storage.File, error) {
	path, err := f.resolveStatePath()
	if err != nil {
		return nil, err
	}
	return storage.NewFile(path), nil
}

func (f *rootFlags) loadContent() (*content.Content, error) {
	c, err := content.Load(f.contentPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}
	return c, nil
}

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"folio/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTheme(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTheme(cmd, flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openThemeStore(cmd, flags)
			if err != nil {
				return err
			}
			return printTheme(cmd, store, store.Toggle(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose a theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, ok := theme.Parse(args[0])
			if !ok {
				return errors.Errorf("unknown theme %q, expected light or dark", args[0])
			}
			store, err := openThemeStore(cmd, flags)
			if err != nil {
				return err
			}
			return printTheme(cmd, store, store.Set(cmd.Context(), pref))
		},
	})

	return cmd
}

func openThemeStore(cmd *cobra.Command, flags *rootFlags) (*theme.Store, error) {
	s, err := flags.openStorage()
	if err != nil {
		return nil, err
	}
	return theme.NewStore(cmd.Context(), s), nil
}

func showTheme(cmd *cobra.Command, flags *rootFlags) error {
	store, err := openThemeStore(cmd, flags)
	if err != nil {
		return err
	}
	return printTheme(cmd, store, store.Get())
}

func printTheme(cmd *cobra.Command, store *theme.Store, pref theme.Preference) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), pref.String()); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	if !store.Persistent() {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: the theme could not be saved and applies to this run only")
	}
	return nil
}

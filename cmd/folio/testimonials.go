package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"folio/internal/testimonials"
)

type addFlags struct {
	name   string
	role   string
	review string
	rating int
}

func newTestimonialsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "testimonials",
		Aliases: []string{"testimonial"},
		Short:   "List or add testimonials",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTestimonials(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the stored testimonials, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTestimonials(cmd, flags)
		},
	})
	cmd.AddCommand(newAddTestimonialCmd(flags))

	return cmd
}

func newAddTestimonialCmd(flags *rootFlags) *cobra.Command {
	add := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a testimonial",
		Long: fmt.Sprintf(`Add a testimonial. Only the %d most recent testimonials are kept;
adding one beyond that drops the oldest.`, testimonials.Capacity),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.openStorage()
			if err != nil {
				return err
			}
			store := testimonials.NewStore(cmd.Context(), s)
			created, err := store.Submit(cmd.Context(), testimonials.Candidate{
				Name:   add.name,
				Role:   add.role,
				Review: add.review,
				Rating: add.rating,
			})

			var validationErr *testimonials.ValidationError
			switch {
			case errors.As(err, &validationErr):
				return errors.Wrap(err, "testimonial rejected")
			case err != nil:
				return errors.Wrap(err, "testimonial not saved")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added testimonial from %s.\n", created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&add.name, "name", "", "your name")
	cmd.Flags().StringVar(&add.role, "role", "", "your role or company")
	cmd.Flags().StringVar(&add.review, "review", "", "the testimonial text")
	cmd.Flags().IntVar(&add.rating, "rating", 5, "rating from 1 to 5")

	return cmd
}

func listTestimonials(cmd *cobra.Command, flags *rootFlags) error {
	s, err := flags.openStorage()
	if err != nil {
		return err
	}
	items := testimonials.NewStore(cmd.Context(), s).List()
	return writeTestimonials(cmd.OutOrStdout(), items)
}

func writeTestimonials(w io.Writer, items []testimonials.Testimonial) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No testimonials yet. Be the first to share your experience!")
		return errors.Wrap(err, "failed to write output")
	}
	for i, t := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		var stars strings.Builder
		for _, filled := range t.Stars() {
			if filled {
				stars.WriteString("★")
			} else {
				stars.WriteString("☆")
			}
		}
		if _, err := fmt.Fprintf(w, "%s  %s, %s (%s)\n  %s\n", stars.String(), t.Name, t.Role, t.Date, t.Review); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

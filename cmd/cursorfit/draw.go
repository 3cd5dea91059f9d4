package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/cursorfit/internal/grapheme"
	"github.com/iw2rmb/cursorfit/layout"
	"github.com/iw2rmb/cursorfit/litmus"
)

// cursorInput is the TEXT argument shared by truncate and split. Without
// --cursor the text must contain the configured cursor.
type cursorInput struct {
	cursor int
}

func (in *cursorInput) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&in.cursor, "cursor", -1, "cursor position in grapheme units (default: read from the cursor in TEXT)")
}

func (in *cursorInput) parse(text string, opt litmus.Options) ([]string, int, error) {
	if in.cursor < 0 {
		return litmus.ParseCursor(text, opt.Cursor)
	}
	units := grapheme.Split(text)
	if in.cursor > len(units) {
		return nil, 0, fmt.Errorf("%w: %d not in [0, %d]", layout.ErrCursorOutOfRange, in.cursor, len(units))
	}
	return units, in.cursor, nil
}

func (a *app) truncateCmd() *cobra.Command {
	var (
		in      cursorInput
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "truncate TEXT",
		Short: "Print the visible part of TEXT around the cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := a.cfg.LitmusOptions()
			flags := cmd.Flags()
			if flags.Changed("viewport") {
				opt.ViewportWidth, _ = flags.GetInt("viewport")
			}
			if flags.Changed("margin") {
				opt.Margin, _ = flags.GetInt("margin")
			}
			if flags.Changed("ellipsis-max") {
				opt.EllipsisMax, _ = flags.GetInt("ellipsis-max")
			}

			units, cursor, err := in.parse(args[0], opt)
			if err != nil {
				return err
			}
			out, err := litmus.DrawOverflow(units, cursor, opt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if explain {
				w, err := layout.TruncationWindow(units, cursor, layout.TruncateOptions{
					ViewportWidth: opt.ViewportWidth,
					Margin:        opt.Margin,
					EllipsisMax:   opt.EllipsisMax,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "text [%d, %d) ellipsis %d/%d width %d\n",
					w.TextStart, w.TextEnd, w.LeftEllipsis, w.RightEllipsis, w.Width())
			}
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().Int("viewport", 0, "viewport width in units (overrides config)")
	cmd.Flags().Int("margin", 0, "units kept visible on each side of the cursor (overrides config)")
	cmd.Flags().Int("ellipsis-max", 0, "maximum ellipsis units per side (overrides config)")
	cmd.Flags().BoolVar(&explain, "explain", false, "also print the window")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		in     cursorInput
		marker string
	)
	cmd := &cobra.Command{
		Use:   "split TEXT",
		Short: "Print both rows produced by pressing ENTER in TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("marker") {
				a.cfg.Layout.Marker = marker
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			opt := a.cfg.LitmusOptions()
			units, cursor, err := in.parse(args[0], opt)
			if err != nil {
				return err
			}
			out, err := litmus.DrawEnter(units, cursor, opt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&marker, "marker", "", "indentation marker, one grapheme (overrides config)")
	return cmd
}

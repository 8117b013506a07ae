package cli

import (
	"fmt"

	"pubcat/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in manual",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `pubcat docs` to list topics)", topic))
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			// Avoid WithAutoStyle: it can block waiting on terminal queries in
			// some setups.
			style := "light"
			if lipgloss.HasDarkBackground() {
				style = "dark"
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(style),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			out, err := r.Render(body)
			if err != nil {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no rendering)")
	return cmd
}

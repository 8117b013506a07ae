package cli

import (
	"fmt"

	"pubcat/internal/search"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List publication records",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pubs := search.Filter(c.Publications, query)
			return writeOut(cmd, app, map[string]any{"data": pubs})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Filter by title, author name or year (substring, case-insensitive)")
	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search records (shorthand for list --query)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pubs := search.Filter(c.Publications, args[0])
			return writeOut(cmd, app, map[string]any{"data": pubs})
		},
	}
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, p := range c.Publications {
				if p.ID == args[0] {
					return writeOut(cmd, app, map[string]any{"data": p})
				}
			}
			return writeErr(cmd, fmt.Errorf("no record with id %q", args[0]))
		},
	}
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pubcat/internal/format"
	"pubcat/internal/store"
	"pubcat/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pubcat",
		Short:        "Faculty publication catalog (local-first) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive catalog
  pubcat

  # Scriptable commands
  pubcat list
  pubcat search "ethics"
  pubcat add --title "Ethics of AI" --first-name Jane --last-name Doe --year 2023
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("PUBCAT_DIR", ""), "Path to store dir (default: .pubcat under the working directory)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	c, s, err := loadCatalog(app)
	if err != nil {
		return err
	}
	return tui.Run(s, c)
}

func loadCatalog(app *App) (*store.Catalog, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = filepath.Join(cwd, ".pubcat")
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	c, err := s.Load(context.Background())
	if err != nil {
		return nil, s, err
	}
	return c, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

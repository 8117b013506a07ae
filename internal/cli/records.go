package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"pubcat/internal/form"
	"pubcat/internal/model"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title, firstName, lastName        string
		netID, email, department, college string
		year                              int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a publication record",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New()
			f.Title = title
			f.FirstName = firstName
			f.LastName = lastName
			f.NetID = netID
			f.Email = email
			if cmd.Flags().Changed("department") {
				f.Department = department
			}
			if cmd.Flags().Changed("college") {
				f.College = college
			}
			if cmd.Flags().Changed("year") {
				f.Year = strconv.Itoa(year)
			}

			p, ok := f.Record()
			if !ok {
				return writeErr(cmd, errors.New(validationSummary(f.Errors)))
			}

			c, s, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			created, err := s.Create(cmd.Context(), c, form.Fields(p))
			if err != nil {
				// The in-memory add happened but did not reach disk.
				return writeErr(cmd, fmt.Errorf("record not persisted: %w", err))
			}
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Publication title")
	cmd.Flags().StringVar(&firstName, "first-name", "", "Author first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Author last name")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Publication year")
	cmd.Flags().StringVar(&netID, "net-id", "", "Author netID (optional)")
	cmd.Flags().StringVar(&email, "email", "", "Author email (optional)")
	cmd.Flags().StringVar(&department, "department", form.DefaultDepartment, "Department name")
	cmd.Flags().StringVar(&college, "college", form.DefaultCollege, "College or school")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var (
		title, firstName, lastName        string
		netID, email, department, college string
		year                              int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a record (only the supplied flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var patch model.Patch
			if cmd.Flags().Changed("title") {
				if strings.TrimSpace(title) == "" {
					return writeErr(cmd, errors.New("title: Publication title is required."))
				}
				patch.Title = model.StringPtr(title)
			}
			if cmd.Flags().Changed("first-name") {
				if strings.TrimSpace(firstName) == "" {
					return writeErr(cmd, errors.New("first_name: First name is required."))
				}
				patch.FirstName = model.StringPtr(firstName)
			}
			if cmd.Flags().Changed("last-name") {
				if strings.TrimSpace(lastName) == "" {
					return writeErr(cmd, errors.New("last_name: Last name is required."))
				}
				patch.LastName = model.StringPtr(lastName)
			}
			if cmd.Flags().Changed("year") {
				if year < 1900 || year > time.Now().Year()+5 {
					return writeErr(cmd, errors.New("year: Please enter a valid year."))
				}
				patch.Year = model.IntPtr(year)
			}
			if cmd.Flags().Changed("net-id") {
				patch.NetID = model.StringPtr(netID)
			}
			if cmd.Flags().Changed("email") {
				patch.Email = model.StringPtr(email)
			}
			if cmd.Flags().Changed("department") {
				patch.Department = model.StringPtr(department)
			}
			if cmd.Flags().Changed("college") {
				patch.College = model.StringPtr(college)
			}

			c, s, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			found := false
			for _, p := range c.Publications {
				if p.ID == id {
					found = true
					break
				}
			}
			if err := s.Update(cmd.Context(), c, id, patch); err != nil {
				return writeErr(cmd, fmt.Errorf("record not persisted: %w", err))
			}
			if !found {
				// Store contract: unknown id is a silent no-op. Say so in the
				// payload instead of failing.
				return writeOut(cmd, app, map[string]any{"data": nil, "meta": map[string]any{"updated": false}})
			}
			for _, p := range c.Publications {
				if p.ID == id {
					return writeOut(cmd, app, map[string]any{"data": p, "meta": map[string]any{"updated": true}})
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Publication title")
	cmd.Flags().StringVar(&firstName, "first-name", "", "Author first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Author last name")
	cmd.Flags().IntVar(&year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&netID, "net-id", "", "Author netID")
	cmd.Flags().StringVar(&email, "email", "", "Author email")
	cmd.Flags().StringVar(&department, "department", "", "Department name")
	cmd.Flags().StringVar(&college, "college", "", "College or school")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				// Scripted analogue of the TUI confirmation dialog.
				return writeErr(cmd, fmt.Errorf("refusing to delete %q without --yes", args[0]))
			}
			c, s, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			before := len(c.Publications)
			if err := s.Delete(cmd.Context(), c, args[0]); err != nil {
				return writeErr(cmd, fmt.Errorf("deletion not persisted: %w", err))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted": before != len(c.Publications),
			}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation guard")
	return cmd
}

func validationSummary(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+errs[f])
	}
	return strings.Join(parts, "; ")
}

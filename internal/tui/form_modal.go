package tui

import (
	"context"
	"strings"

	"pubcat/internal/form"
	"pubcat/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	name  string
	label string
	input textinput.Model
}

// formState wires the working copy (internal/form) to a column of text
// inputs. Nothing reaches the catalog until a valid submit.
type formState struct {
	ctrl   *form.Form
	fields []formField
	focus  int
}

func newAddFormState() *formState {
	return newFormState(form.New())
}

func newEditFormState(p model.Publication) *formState {
	return newFormState(form.Edit(p))
}

func newFormState(ctrl *form.Form) *formState {
	defs := []struct {
		name, label, value string
		charLimit, width   int
	}{
		{form.FieldTitle, "Publication Title", ctrl.Title, 256, 48},
		{form.FieldFirstName, "Author First Name", ctrl.FirstName, 128, 48},
		{form.FieldLastName, "Author Last Name", ctrl.LastName, 128, 48},
		{form.FieldYear, "Year", ctrl.Year, 4, 6},
		{form.FieldNetID, "NetID (Optional)", ctrl.NetID, 64, 48},
		{form.FieldEmail, "Email (Optional)", ctrl.Email, 128, 48},
		{form.FieldDept, "Department", ctrl.Department, 256, 48},
		{form.FieldCollege, "College or School", ctrl.College, 256, 48},
	}

	fs := &formState{ctrl: ctrl}
	for i, sp := range defs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = sp.charLimit
		in.Width = sp.width
		in.SetValue(sp.value)
		if i == 0 {
			in.Focus()
		}
		fs.fields = append(fs.fields, formField{name: sp.name, label: sp.label, input: in})
	}
	return fs
}

func (fs *formState) editing() bool { return fs.ctrl.ID != "" }

func (fs *formState) focusField(i int) {
	n := len(fs.fields)
	fs.focus = ((i % n) + n) % n
	for j := range fs.fields {
		if j == fs.focus {
			fs.fields[j].input.Focus()
		} else {
			fs.fields[j].input.Blur()
		}
	}
}

func (m appModel) updateFormModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fs := m.form
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+g":
		// Discard the working copy.
		m.form = nil
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		fs.focusField(fs.focus + 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		fs.focusField(fs.focus - 1)
		return m, textinput.Blink
	case "enter":
		if fs.focus < len(fs.fields)-1 {
			fs.focusField(fs.focus + 1)
			return m, textinput.Blink
		}
		return m.submitForm()
	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	fs.fields[fs.focus].input, cmd = fs.fields[fs.focus].input.Update(msg)
	// Mirror the keystroke into the working copy: exactly one field changes.
	fs.ctrl.Set(fs.fields[fs.focus].name, fs.fields[fs.focus].input.Value())
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	rec, ok := m.form.ctrl.Record()
	if !ok {
		// Invalid: keep the working copy, show the field messages inline.
		return m, nil
	}

	ctx := context.Background()
	var err error
	if rec.ID != "" {
		err = m.store.Update(ctx, m.catalog, rec.ID, form.Patch(rec))
	} else {
		_, err = m.store.Create(ctx, m.catalog, form.Fields(rec))
	}

	var cmd tea.Cmd
	if err != nil {
		cmd = m.setStatus("Saved in memory, but not persisted: " + err.Error())
	}
	m.form = nil
	m.modal = modalNone
	m.refreshList()
	m.captureStoreModTime()
	return m, cmd
}

func (fs *formState) view(screenWidth int) string {
	bodyW := modalBodyWidth(screenWidth)

	labelStyle := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	inputStyle := lipgloss.NewStyle().Background(colorInputBg)

	var b strings.Builder
	for i, f := range fs.fields {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(inputStyle.Render(f.input.View()))
		b.WriteString("\n")
		if msg, bad := fs.ctrl.Errors[f.name]; bad {
			b.WriteString(styleError().Render(msg))
			b.WriteString("\n")
		}
	}

	help := styleMuted().Width(bodyW).Render("tab: next field   ctrl+s: save   esc: cancel")
	b.WriteString("\n")
	b.WriteString(help)

	title := "Add New Publication"
	if fs.editing() {
		title = "Edit Publication"
	}
	return renderModalBox(screenWidth, title, b.String())
}

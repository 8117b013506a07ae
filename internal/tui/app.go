package tui

import (
	"context"
	"os"
	"strings"
	"time"

	"pubcat/internal/search"
	"pubcat/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reloadTickMsg struct{}

type appModel struct {
	store   store.Store
	catalog *store.Catalog

	width  int
	height int

	searchInput textinput.Model
	list        list.Model

	modal           modalKind
	form            *formState
	pendingDeleteID string
	confirmFocus    confirmModalFocus

	status    string
	statusSeq int

	lastStoreModTime time.Time
}

func newAppModel(s store.Store, c *store.Catalog) appModel {
	m := appModel{
		store:   s,
		catalog: c,
	}

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/ "
	m.searchInput.Placeholder = "Search by title, author, year..."
	m.searchInput.CharLimit = 256
	m.searchInput.Width = 40

	m.list = newCatalogList(nil)
	m.refreshList()
	m.captureStoreModTime()
	return m
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case reloadTickMsg:
		if m.modal == modalNone && m.storeChanged() {
			// Another pubcat wrote the catalog; pick it up.
			_ = m.reloadFromDisk()
		}
		return m, tickReload()

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalForm:
			return m.updateFormModal(msg)
		case modalConfirmDelete:
			return m.updateConfirmModal(msg)
		}

		if m.searchInput.Focused() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "ctrl+g":
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.refreshList()
				return m, nil
			case "enter", "down":
				// Hand focus back to the list, keeping the query applied.
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.refreshList()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.searchInput.Focus()
			return m, textinput.Blink
		case "esc":
			if m.searchInput.Value() != "" {
				m.searchInput.SetValue("")
				m.refreshList()
				return m, nil
			}
		case "a":
			m.form = newAddFormState()
			m.modal = modalForm
			return m, textinput.Blink
		case "enter", "e":
			if it, ok := m.list.SelectedItem().(publicationItem); ok {
				m.form = newEditFormState(it.pub)
				m.modal = modalForm
				return m, textinput.Blink
			}
		case "d":
			if it, ok := m.list.SelectedItem().(publicationItem); ok {
				m.pendingDeleteID = it.pub.ID
				m.confirmFocus = confirmFocusCancel
				m.modal = modalConfirmDelete
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		return m.cancelConfirm()
	case "esc", "ctrl+g":
		return m.cancelConfirm()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// confirmDelete deletes the pending record through the store and closes the
// dialog. A stale pending id (record already gone) is a store-level no-op.
func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.pendingDeleteID != "" {
		if err := m.store.Delete(context.Background(), m.catalog, m.pendingDeleteID); err != nil {
			cmd = m.setStatus("Deleted in memory, but not saved: " + err.Error())
		}
		m.refreshList()
	}
	m.pendingDeleteID = ""
	m.modal = modalNone
	m.captureStoreModTime()
	return m, cmd
}

func (m appModel) cancelConfirm() (tea.Model, tea.Cmd) {
	m.pendingDeleteID = ""
	m.modal = modalNone
	return m, nil
}

func (m appModel) View() string {
	switch m.modal {
	case modalForm:
		return placeCentered(m.width, m.height, m.form.view(m.width))
	case modalConfirmDelete:
		box := renderConfirmModal(
			m.width,
			"Delete Publication",
			"Are you sure you want to delete this publication record? This action cannot be undone.",
			"Confirm Delete",
			"Cancel",
			m.confirmFocus,
		)
		return placeCentered(m.width, m.height, box)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Ethics Research Catalog")
	header := strings.Join([]string{title, m.searchInput.View()}, "\n")

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		empty := strings.Join([]string{
			"",
			"No publications found.",
			styleMuted().Render("Try adjusting your search query or add a new publication."),
		}, "\n")
		body = empty
	}

	footer := styleMuted().Render("a: add   enter/e: edit   d: delete   /: search   q: quit")
	if m.status != "" {
		footer = styleError().Render(m.status)
	}

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m *appModel) resizeList() {
	// Leave room for header/footer.
	h := m.height - 6
	if h < 10 {
		h = 10
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.list.SetSize(w, h)
}

// refreshList rebuilds the visible items from the catalog and the current
// query, keeping the selection where possible.
func (m *appModel) refreshList() {
	curID := ""
	if it, ok := m.list.SelectedItem().(publicationItem); ok {
		curID = it.pub.ID
	}
	filtered := search.Filter(m.catalog.Publications, m.searchInput.Value())
	items := make([]list.Item, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, publicationItem{pub: p})
	}
	m.list.SetItems(items)
	if curID != "" {
		selectListItemByID(&m.list, curID)
	}
}

func (m *appModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m *appModel) captureStoreModTime() {
	m.lastStoreModTime = storeModTime(m.store)
}

func (m *appModel) storeChanged() bool {
	return storeModTime(m.store).After(m.lastStoreModTime)
}

// storeModTime covers both the database file and its WAL sidecar; under
// journal_mode=WAL a write may only touch the latter.
func storeModTime(s store.Store) time.Time {
	mt := fileModTime(s.SQLitePath())
	if wal := fileModTime(s.SQLitePath() + "-wal"); wal.After(mt) {
		mt = wal
	}
	return mt
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

func (m *appModel) reloadFromDisk() error {
	c, err := m.store.Load(context.Background())
	if err != nil {
		return err
	}
	m.catalog = c
	m.captureStoreModTime()
	m.refreshList()
	return nil
}

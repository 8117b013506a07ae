package tui

import (
	"strconv"
	"strings"

	"pubcat/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type publicationItem struct {
	pub model.Publication
}

func (i publicationItem) FilterValue() string {
	parts := []string{i.pub.AuthorName()}
	if i.pub.Title != nil {
		parts = append(parts, *i.pub.Title)
	}
	if i.pub.Year != nil {
		parts = append(parts, strconv.Itoa(*i.pub.Year))
	}
	return strings.Join(parts, " ")
}

func (i publicationItem) Title() string {
	return displayTitle(i.pub)
}

func (i publicationItem) Description() string {
	return i.pub.AuthorName()
}

func displayTitle(p model.Publication) string {
	if p.Title != nil && strings.TrimSpace(*p.Title) != "" {
		return *p.Title
	}
	return "No Title Provided"
}

func newCatalogList(items []list.Item) list.Model {
	l := list.New(items, newCardDelegate(), 0, 0)
	// The header renders its own search box and we draw our own footer, so
	// keep list chrome minimal and leave filtering to internal/search.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("record", "records")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectListItemByID(l *list.Model, id string) {
	for i := 0; i < len(l.Items()); i++ {
		if it, ok := l.Items()[i].(publicationItem); ok && it.pub.ID == id {
			l.Select(i)
			return
		}
	}
}

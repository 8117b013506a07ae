package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// cardDelegate renders one publication per card: department + year badge,
// title, author + college.
type cardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	deptStyle  lipgloss.Style
	badgeStyle lipgloss.Style
	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
}

func newCardDelegate() cardDelegate {
	base := lipgloss.NewStyle().
		Width(0). // Set per-render.
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	selected := base.BorderForeground(colorSelectedBorder)

	return cardDelegate{
		normalCard:   base,
		selectedCard: selected,
		deptStyle:    lipgloss.NewStyle().Foreground(colorAccent),
		badgeStyle:   lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
	}
}

func (d cardDelegate) Height() int  { return 5 } // 3 inner lines + border top/bottom
func (d cardDelegate) Spacing() int { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(publicationItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	frameW := card.GetHorizontalFrameSize()
	innerW := totalW - frameW
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	dept := d.deptStyle.Render(strings.ToUpper(truncateToWidth(it.pub.Department, innerW)))
	top := dept
	if it.pub.Year != nil {
		badge := d.badgeStyle.Render(strconv.Itoa(*it.pub.Year))
		gap := innerW - xansi.StringWidth(dept) - xansi.StringWidth(badge)
		if gap >= 1 {
			top = dept + strings.Repeat(" ", gap) + badge
		}
	}

	lines := []string{
		top,
		d.titleStyle.Render(truncateToWidth(displayTitle(it.pub), innerW)),
		d.metaStyle.Render(truncateToWidth(it.pub.AuthorName()+"  |  "+it.pub.College, innerW)),
	}
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}

	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	sw := xansi.StringWidth(s)
	if sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	if sw > w {
		return xansi.Cut(s, 0, w)
	}
	return s
}

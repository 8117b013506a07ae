package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const modalMaxWidth = 72

func modalWidth(screenWidth int) int {
	w := screenWidth - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func modalBodyWidth(screenWidth int) int {
	// Box padding is 2 columns each side.
	return modalWidth(screenWidth) - 4
}

// renderModalBox draws a titled modal: a header bar over a padded surface
// box. Body lines are expected to already fit modalBodyWidth.
func renderModalBox(screenWidth int, title string, content string) string {
	w := modalWidth(screenWidth)

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Render(content)

	return strings.Join([]string{header, body}, "\n")
}

// placeCentered centers a modal on the screen, leaving the backdrop blank.
func placeCentered(screenWidth, screenHeight int, box string) string {
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, box)
}

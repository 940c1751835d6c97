package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/connectfour/internal/domain"
)

const paneWidth = 40

var discSymbols = map[domain.Occupant]rune{
	domain.Empty:     '.',
	domain.PlayerOne: 'X',
	domain.PlayerTwo: 'O',
	domain.Computer:  'C',
}

var discColors = map[domain.Occupant]tcell.Color{
	domain.Empty:     tcell.ColorWhite,
	domain.PlayerOne: tcell.ColorBlue,
	domain.PlayerTwo: tcell.ColorRed,
	domain.Computer:  tcell.ColorGreen,
}

// RenderBoard draws b as plain text, top row first, with a column footer.
func RenderBoard(b domain.Board) []string {
	lines := make([]string, 0, domain.Rows+1)
	for r := 0; r < domain.Rows; r++ {
		var sb strings.Builder
		sb.WriteString("|")
		for c := 0; c < domain.Columns; c++ {
			sb.WriteRune(' ')
			sb.WriteRune(discSymbols[b[r][c]])
		}
		sb.WriteString(" |")
		lines = append(lines, sb.String())
	}
	var footer strings.Builder
	footer.WriteString(" ")
	for c := 1; c <= domain.Columns; c++ {
		fmt.Fprintf(&footer, " %d", c)
	}
	return append(lines, footer.String())
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawPane paints one view at (x, y) and returns the number of rows used.
func drawPane(screen tcell.Screen, x, y int, v *View, focused bool) int {
	titleStyle := tcell.StyleDefault.Foreground(discColors[v.player]).Bold(true)
	title := label(v.player)
	if focused {
		title = "> " + title
	}
	drawText(screen, x, y, titleStyle, title)

	lines := RenderBoard(v.board)
	for i, line := range lines {
		row := y + 2 + i
		if i == len(lines)-1 {
			drawText(screen, x, row, tcell.StyleDefault.Dim(true), line)
			continue
		}
		for j, r := range []rune(line) {
			style := tcell.StyleDefault
			if o, ok := occupantFor(r); ok && o != domain.Empty {
				style = style.Foreground(discColors[o]).Bold(true)
			}
			screen.SetContent(x+j, row, r, nil, style)
		}
	}

	logTop := y + 3 + len(lines)
	for i, line := range v.log {
		drawText(screen, x, logTop+i, tcell.StyleDefault, truncate(line, paneWidth-2))
	}
	return logTop + maxLogLines - y
}

func occupantFor(r rune) (domain.Occupant, bool) {
	for o, sym := range discSymbols {
		if sym == r {
			return o, true
		}
	}
	return domain.Empty, false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Package render turns solutions into textual boards. It consumes only the
// Occupied predicate, keeping presentation entirely outside the core
// search.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitrdm/queenslogic/pkg/queens"
)

// Text renders an n×n grid, one row per line, rows top-to-bottom in
// increasing order and columns left-to-right. A queen square is "Q", an
// empty square "X", tokens separated by single spaces.
func Text(sol queens.Solution, n int) string {
	var sb strings.Builder
	cells := make([]string, n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			if sol.Occupied(row, col) {
				cells[col-1] = "Q"
			} else {
				cells[col-1] = "X"
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

var (
	queenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	lightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	darkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Styled renders the board with lipgloss for terminal display: queens as
// "♛" over a checkerboard of "□" and "■".
func Styled(sol queens.Solution, n int) string {
	var sb strings.Builder
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			switch {
			case sol.Occupied(row, col):
				sb.WriteString(queenStyle.Render("♛"))
			case (row+col)%2 == 0:
				sb.WriteString(lightStyle.Render("□"))
			default:
				sb.WriteString(darkStyle.Render("■"))
			}
			if col < n {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package ledger

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// JustifyColumns pads every cell so that each column has the display width of
// its widest cell.
//
// justify holds one letter per column, in either case: 'l' pads on the right,
// 'r' on the left. Cells of columns with any other letter, or beyond justify,
// are kept as is. Rows may have different lengths.
func JustifyColumns(rows [][]string, justify string) [][]string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	result := make([][]string, len(rows))
	for r, row := range rows {
		result[r] = make([]string, len(row))
		for i, cell := range row {
			var align byte
			if i < len(justify) {
				align = justify[i]
			}
			switch align {
			case 'r', 'R':
				result[r][i] = runewidth.FillLeft(cell, widths[i])
			case 'l', 'L':
				result[r][i] = runewidth.FillRight(cell, widths[i])
			default:
				result[r][i] = cell
			}
		}
	}
	return result
}

// JoinColumns joins the cells of each row with sep. Trailing blanks are removed.
func JoinColumns(rows [][]string, sep string) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.TrimRight(strings.Join(row, sep), " \t")
	}
	return lines
}

package main

import (
	"fmt"
	"regexp"
	"sheetCalc/contracts"
	"strings"
)

var fieldSeparatorRegex = regexp.MustCompile(`\t|\s{2,}`)

// Grid holds raw cell contents. Rows may have different widths.
type Grid struct {
	rows [][]string
}

// NewGrid parses tabular text: one row per non-blank line, cells separated
// by a tab or by two or more spaces.
func NewGrid(source string) *Grid {
	rows := make([][]string, 0)

	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rows = append(rows, fieldSeparatorRegex.Split(line, -1))
	}

	return NewGridFromRows(rows)
}

func NewGridFromRows(rows [][]string) *Grid {
	grid := &Grid{
		rows: make([][]string, len(rows)),
	}

	for index, row := range rows {
		grid.rows[index] = make([]string, len(row))
		for column, value := range row {
			grid.rows[index][column] = strings.TrimSpace(value)
		}
	}

	return grid
}

func (g *Grid) RowCount() int {
	return len(g.rows)
}

func (g *Grid) RowWidth(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}

	return len(g.rows[row])
}

func (g *Grid) IsEmpty() bool {
	return len(g.rows) == 0
}

func (g *Grid) RawAt(address *CellAddress) (string, error) {
	if address.Row >= g.RowCount() || address.Column >= g.RowWidth(address.Row) {
		return "", fmt.Errorf("%w: '%s'", contracts.CellNotFoundError, address)
	}

	return g.rows[address.Row][address.Column], nil
}

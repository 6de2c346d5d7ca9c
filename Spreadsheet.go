package main

import (
	"fmt"
	"sheetCalc/contracts"
	"strings"
)

// MaxReferenceDepth bounds how many cell references a single lookup may follow.
// A reference cycle is not detected as such, it runs out of this budget.
const MaxReferenceDepth = 1000

const (
	columnDelimiter = "\t"
	rowDelimiter    = "\n"
)

type Spreadsheet struct {
	grid      *Grid
	evaluator contracts.ExpressionEvaluator
}

func NewSpreadsheet(grid *Grid, evaluator contracts.ExpressionEvaluator) *Spreadsheet {
	return &Spreadsheet{
		grid:      grid,
		evaluator: evaluator,
	}
}

func ParseSpreadsheet(source string) *Spreadsheet {
	return NewSpreadsheet(NewGrid(source), NewExpressionEvaluator())
}

func (s *Spreadsheet) IsEmpty() bool {
	return s.grid.IsEmpty()
}

func (s *Spreadsheet) RowCount() int {
	return s.grid.RowCount()
}

// RawAt returns the stored content of a cell without evaluating it.
func (s *Spreadsheet) RawAt(cellIndex string) (string, error) {
	address, err := ParseCellAddress(cellIndex)
	if err != nil {
		return "", err
	}

	return s.grid.RawAt(address)
}

// Get returns the displayed value of a cell. Nothing is cached, every call
// evaluates the cell and everything it references again.
func (s *Spreadsheet) Get(cellIndex string) (string, error) {
	return s.resolve(cellIndex, 0)
}

func (s *Spreadsheet) Render() (string, error) {
	rows := make([]string, s.grid.RowCount())

	for row := range rows {
		values := make([]string, s.grid.RowWidth(row))

		for column := range values {
			address := NewCellAddress(row, column)
			raw, err := s.grid.RawAt(address)
			if err == nil {
				values[column], err = s.evaluator.EvaluateTopLevel(raw, s.referencedFrom(1))
			}

			if err != nil {
				return "", fmt.Errorf("cell %s: %w", address, err)
			}
		}

		rows[row] = strings.Join(values, columnDelimiter)
	}

	return strings.Join(rows, rowDelimiter), nil
}

func (s *Spreadsheet) resolve(cellIndex string, depth int) (string, error) {
	if depth > MaxReferenceDepth {
		return "", fmt.Errorf("%w: '%s'", contracts.ReferenceDepthError, cellIndex)
	}

	raw, err := s.RawAt(cellIndex)
	if err != nil {
		return "", err
	}

	return s.evaluator.EvaluateTopLevel(raw, s.referencedFrom(depth+1))
}

func (s *Spreadsheet) referencedFrom(depth int) contracts.Sheet {
	return &referencedSheet{
		sheet: s,
		depth: depth,
	}
}

// referencedSheet is the view of the sheet handed to the evaluator, it
// carries how deep into a reference chain the evaluation already is.
type referencedSheet struct {
	sheet *Spreadsheet
	depth int
}

func (r *referencedSheet) Get(cellIndex string) (string, error) {
	return r.sheet.resolve(cellIndex, r.depth)
}

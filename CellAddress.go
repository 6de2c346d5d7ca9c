package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sheetCalc/contracts"
	"slices"
	"strconv"
)

// ColumnLetters is the base of the column code: A..Z are the digits 1..26.
const ColumnLetters = 'Z' - 'A' + 1

var cellIndexRegex = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// CellAddress is a zero-based (Row, Column) pair parsed from an index like "B12".
type CellAddress struct {
	index  string
	Row    int
	Column int
}

func IsCellIndex(s string) bool {
	return cellIndexRegex.MatchString(s)
}

func ParseCellAddress(index string) (*CellAddress, error) {
	matches := cellIndexRegex.FindStringSubmatch(index)
	if matches == nil {
		return nil, fmt.Errorf("%w: '%s'", contracts.InvalidCellIndexError, index)
	}

	column := decodeColumn(matches[1])
	row := decodeRow(matches[2])
	// rows are numbered from 1, "A0" has no zero-based row
	if row < 1 {
		return nil, fmt.Errorf("%w: '%s'", contracts.InvalidCellIndexError, index)
	}

	return &CellAddress{
		index:  index,
		Row:    row - 1,
		Column: column - 1,
	}, nil
}

func NewCellAddress(row int, column int) *CellAddress {
	return &CellAddress{
		index:  ColumnName(column) + strconv.Itoa(row+1),
		Row:    row,
		Column: column,
	}
}

func (a *CellAddress) String() string {
	return a.index
}

// ColumnName encodes a zero-based column: 0 -> A, 25 -> Z, 26 -> AA.
func ColumnName(column int) string {
	letters := make([]byte, 0, 3)
	for n := column + 1; n > 0; n = (n - 1) / ColumnLetters {
		letters = append(letters, byte('A'+(n-1)%ColumnLetters))
	}
	slices.Reverse(letters)

	return string(letters)
}

// decodeColumn returns the 1-based column number of a letters code.
// Codes beyond int saturate to math.MaxInt, which no grid reaches.
func decodeColumn(letters string) (column int) {
	for _, letter := range letters {
		if column > (math.MaxInt-ColumnLetters)/ColumnLetters {
			return math.MaxInt
		}
		column = column*ColumnLetters + int(letter-'A'+1)
	}

	return column
}

// decodeRow parses the 1-based row digits, saturating like decodeColumn.
func decodeRow(digits string) int {
	row, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}

	return row
}

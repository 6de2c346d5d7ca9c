package main

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"os"
	"path/filepath"
	"strings"
)

const workbookExtension = ".xlsx"

// LoadSpreadsheetFile reads a tabular text file, or one sheet of an xlsx
// workbook when the file has the .xlsx extension.
func LoadSpreadsheetFile(path string, sheetName string) (*Spreadsheet, error) {
	var grid *Grid

	if strings.EqualFold(filepath.Ext(path), workbookExtension) {
		var err error
		grid, err = LoadWorkbookGrid(path, sheetName)
		if err != nil {
			return nil, err
		}
	} else {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		grid = NewGrid(string(source))
	}

	return NewSpreadsheet(grid, NewExpressionEvaluator()), nil
}

// LoadWorkbookGrid builds a grid from a workbook sheet, the first sheet when
// sheetName is empty. A formula cell is loaded as "=" followed by its formula.
func LoadWorkbookGrid(path string, sheetName string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
	}

	for rowIndex, row := range rows {
		for columnIndex := range row {
			cellName, err := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+1)
			if err != nil {
				return nil, err
			}

			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("sheet %s cell %s: %w", sheetName, cellName, err)
			}

			if formula != "" {
				row[columnIndex] = ExpressionPrefix + strings.TrimPrefix(formula, ExpressionPrefix)
			}
		}
	}

	return NewGridFromRows(rows), nil
}

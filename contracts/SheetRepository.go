package contracts

import "errors"

type SheetRepository interface {
	SetSheet(sheetId string, source string) (*SheetSnapshot, error)
	GetSheet(sheetId string) (*SheetSnapshot, error)
	GetCell(sheetId string, cellIndex string) (*Cell, error)
}

var SheetNotFoundError = errors.New("sheet not found")

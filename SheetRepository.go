package main

import (
	"fmt"
	"go.etcd.io/bbolt"
	"sheetCalc/contracts"
	"strings"
)

// SheetsBucket keeps the source text of every sheet keyed by its canonical id.
var SheetsBucket = []byte("sheets")

type SheetRepository struct {
	db                *bbolt.DB
	evaluator         contracts.ExpressionEvaluator
	webhookDispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(
	db *bbolt.DB, evaluator contracts.ExpressionEvaluator, webhookDispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		evaluator:         evaluator,
		webhookDispatcher: webhookDispatcher,
	}
}

func CanonicalSheetId(sheetId string) string {
	return strings.ToLower(strings.TrimSpace(sheetId))
}

// SetSheet stores the source even when it does not render, the render error
// is reported in the returned snapshot.
func (s *SheetRepository) SetSheet(sheetId string, source string) (*contracts.SheetSnapshot, error) {
	sheetId = CanonicalSheetId(sheetId)

	err := s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(SheetsBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sheetId), []byte(source))
	})

	if err != nil {
		return nil, err
	}

	snapshot, _ := s.makeSnapshot(sheetId, source)
	s.webhookDispatcher.Notify(sheetId, snapshot)

	return snapshot, nil
}

// GetSheet returns a nil snapshot only when the sheet could not be loaded,
// a render error comes together with the snapshot.
func (s *SheetRepository) GetSheet(sheetId string) (*contracts.SheetSnapshot, error) {
	sheetId = CanonicalSheetId(sheetId)

	source, err := s.loadSource(sheetId)
	if err != nil {
		return nil, err
	}

	return s.makeSnapshot(sheetId, source)
}

// GetCell returns the cell with its raw value even when evaluation fails.
func (s *SheetRepository) GetCell(sheetId string, cellIndex string) (cell *contracts.Cell, err error) {
	sheetId = CanonicalSheetId(sheetId)

	source, err := s.loadSource(sheetId)
	if err != nil {
		return nil, err
	}

	spreadsheet := s.makeSpreadsheet(source)

	cell = &contracts.Cell{Index: cellIndex}
	cell.Value, err = spreadsheet.RawAt(cellIndex)
	if err != nil {
		return nil, err
	}

	cell.Result, err = spreadsheet.Get(cellIndex)
	if err != nil {
		err = fmt.Errorf("cell %s: %w", cellIndex, err)
	}

	return cell, err
}

func (s *SheetRepository) loadSource(sheetId string) (source string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(SheetsBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		value := bucket.Get([]byte(sheetId))
		if value == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		// value is only valid inside the transaction
		source = string(value)
		return nil
	})

	return
}

func (s *SheetRepository) makeSpreadsheet(source string) *Spreadsheet {
	return NewSpreadsheet(NewGrid(source), s.evaluator)
}

func (s *SheetRepository) makeSnapshot(sheetId string, source string) (*contracts.SheetSnapshot, error) {
	spreadsheet := s.makeSpreadsheet(source)

	snapshot := &contracts.SheetSnapshot{
		Id:     sheetId,
		Source: source,
		Rows:   spreadsheet.RowCount(),
	}

	rendered, err := spreadsheet.Render()
	if err != nil {
		snapshot.Error = err.Error()
	} else {
		snapshot.Rendered = rendered
	}

	return snapshot, err
}

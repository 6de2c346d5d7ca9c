package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"sheetCalc/contracts"
	"testing"
)

func _runCommand(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := NewRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func _writeSheetFile(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	require.NoError(t, os.WriteFile(path, []byte(source), 0600))

	return path
}

func TestRenderCommand(t *testing.T) {
	t.Run("text_file", func(t *testing.T) {
		path := _writeSheetFile(t, "1\t2\n3\t=ADD(A1, B1)\n")

		out, err := _runCommand("render", path)

		assert.NoError(t, err)
		assert.Equal(t, "1\t2\n3\t3\n", out)
	})

	t.Run("workbook", func(t *testing.T) {
		out, err := _runCommand("render", _createWorkbook(t))

		assert.NoError(t, err)
		assert.Equal(t, "2\t5\t3\ntext\n", out)
	})

	t.Run("evaluation_error", func(t *testing.T) {
		path := _writeSheetFile(t, "=DIVIDE(1)")

		_, err := _runCommand("render", path)

		assert.ErrorIs(t, err, contracts.ArityError)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := _runCommand("render", filepath.Join(t.TempDir(), "missing.txt"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("arguments", func(t *testing.T) {
		_, err := _runCommand("render")

		assert.Error(t, err)
	})
}

func TestGetCommand(t *testing.T) {
	path := _writeSheetFile(t, "7\t2\n=DIVIDE(A1, B1)")

	t.Run("value", func(t *testing.T) {
		out, err := _runCommand("get", path, "A2")

		assert.NoError(t, err)
		assert.Equal(t, "3.50\n", out)
	})

	t.Run("workbook_sheet", func(t *testing.T) {
		out, err := _runCommand("get", "--sheet", "Other", _createWorkbook(t), "A1")

		assert.NoError(t, err)
		assert.Equal(t, "other\n", out)
	})

	t.Run("invalid_index", func(t *testing.T) {
		_, err := _runCommand("get", path, "2A")

		assert.ErrorIs(t, err, contracts.InvalidCellIndexError)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := _runCommand("get", path, "C3")

		assert.ErrorIs(t, err, contracts.CellNotFoundError)
	})
}

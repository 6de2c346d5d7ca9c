package contracts

import (
	"errors"
)

type Cell struct {
	Index  string `json:"index"`
	Value  string `json:"value"`
	Result string `json:"result"`
}

var InvalidCellIndexError = errors.New("invalid cell index")

var CellNotFoundError = errors.New("cell not found")

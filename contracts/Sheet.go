package contracts

// Sheet resolves the displayed value of a cell by its index (e.g. "B12").
// Expression evaluation reaches other cells only through this interface.
type Sheet interface {
	Get(cellIndex string) (string, error)
}

// SheetSnapshot is a stored sheet together with its rendering.
type SheetSnapshot struct {
	Id       string `json:"id"`
	Source   string `json:"source"`
	Rows     int    `json:"rows"`
	Rendered string `json:"rendered"`
	Error    string `json:"error,omitempty"`
}

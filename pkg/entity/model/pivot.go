package model

// PivotTable is a 2-D cross-tabulation with explicitly ordered axes.
// Cells[i][j] is the aggregated value for Rows[i] x Cols[j]. Row and column
// order is part of the contract: canonical axes (weekday, period) always
// appear complete and in fixed order, so consumers can diff outputs across
// runs.
type PivotTable struct {
	RowKey string      `json:"rowKey"`
	ColKey string      `json:"colKey"`
	Rows   []string    `json:"rows"`
	Cols   []string    `json:"cols"`
	Cells  [][]float64 `json:"cells"`

	rowIndex map[string]int
	colIndex map[string]int
}

// NewPivotTable creates an empty pivot table for the named dimensions.
func NewPivotTable(rowKey, colKey string) *PivotTable {
	return &PivotTable{
		RowKey:   rowKey,
		ColKey:   colKey,
		rowIndex: make(map[string]int),
		colIndex: make(map[string]int),
	}
}

// EnsureRow registers a row label, keeping insertion order, and returns its
// index. Existing labels keep their position.
func (p *PivotTable) EnsureRow(label string) int {
	if i, ok := p.rowIndex[label]; ok {
		return i
	}
	i := len(p.Rows)
	p.rowIndex[label] = i
	p.Rows = append(p.Rows, label)
	p.Cells = append(p.Cells, make([]float64, len(p.Cols)))
	return i
}

// EnsureCol registers a column label, keeping insertion order, and returns
// its index. All existing rows are zero-extended.
func (p *PivotTable) EnsureCol(label string) int {
	if j, ok := p.colIndex[label]; ok {
		return j
	}
	j := len(p.Cols)
	p.colIndex[label] = j
	p.Cols = append(p.Cols, label)
	for i := range p.Cells {
		p.Cells[i] = append(p.Cells[i], 0)
	}
	return j
}

// Add accumulates v into the (row, col) cell, creating the axes as needed.
func (p *PivotTable) Add(row, col string, v float64) {
	i := p.EnsureRow(row)
	j := p.EnsureCol(col)
	p.Cells[i][j] += v
}

// Value returns the cell for (row, col), or 0 when either label is absent.
func (p *PivotTable) Value(row, col string) float64 {
	i, ok := p.rowIndex[row]
	if !ok {
		return 0
	}
	j, ok := p.colIndex[col]
	if !ok {
		return 0
	}
	return p.Cells[i][j]
}

// RowTotal sums one row across all columns.
func (p *PivotTable) RowTotal(row string) float64 {
	i, ok := p.rowIndex[row]
	if !ok {
		return 0
	}
	var total float64
	for _, v := range p.Cells[i] {
		total += v
	}
	return total
}

// CountRow is one labeled value of an ordered count series, e.g. posts per
// weekday.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

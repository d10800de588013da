package table

// Position is a zero-based cell coordinate.
type Position struct {
	Row int
	Col int
}

// Compare orders positions row-major: all of row 0 before all of
// row 1, left to right within a row. Returns -1, 0, or 1.
func (p Position) Compare(o Position) int {
	if p.Row != o.Row {
		if p.Row < o.Row {
			return -1
		}
		return 1
	}
	if p.Col != o.Col {
		if p.Col < o.Col {
			return -1
		}
		return 1
	}
	return 0
}

// CompareByColumn orders positions column-major: all of column 0
// before all of column 1, top to bottom within a column.
func (p Position) CompareByColumn(o Position) int {
	if p.Col != o.Col {
		if p.Col < o.Col {
			return -1
		}
		return 1
	}
	if p.Row != o.Row {
		if p.Row < o.Row {
			return -1
		}
		return 1
	}
	return 0
}

package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCellRect(t *testing.T) {
	tests := []struct {
		name         string
		col, row     int
		cellW, cellH int
		expected     Rect
	}{
		{"origin", 0, 0, 2, 1, NewRect(0, 0, 2, 1)},
		{"terminal cell", 3, 4, 2, 1, NewRect(6, 4, 2, 1)},
		{"window cell", 7, 7, 40, 40, NewRect(280, 280, 40, 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CellRect(tc.col, tc.row, tc.cellW, tc.cellH)
			if result != tc.expected {
				t.Errorf("CellRect(%d, %d, %d, %d) = %+v, expected %+v",
					tc.col, tc.row, tc.cellW, tc.cellH, result, tc.expected)
			}
		})
	}
}

func TestCellRectsTile(t *testing.T) {
	// Neighboring cells share an edge, with no gap and no overlap.
	a := CellRect(2, 2, 3, 2)
	right := CellRect(3, 2, 3, 2)
	below := CellRect(2, 3, 3, 2)

	if a.Right() != right.X || a.Bottom() != below.Y {
		t.Error("adjacent cells should share an edge")
	}
}

package table

import "testing"

func TestPosition_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2}, Position{1, 2}, 0},
		{"earlier row", Position{0, 5}, Position{1, 0}, -1},
		{"later row", Position{2, 0}, Position{1, 9}, 1},
		{"same row earlier col", Position{1, 1}, Position{1, 2}, -1},
		{"same row later col", Position{1, 3}, Position{1, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPosition_CompareByColumn(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2}, Position{1, 2}, 0},
		{"earlier col", Position{5, 0}, Position{0, 1}, -1},
		{"later col", Position{0, 2}, Position{9, 1}, 1},
		{"same col earlier row", Position{1, 1}, Position{2, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CompareByColumn(tt.b); got != tt.want {
				t.Errorf("CompareByColumn = %d, want %d", got, tt.want)
			}
		})
	}
}

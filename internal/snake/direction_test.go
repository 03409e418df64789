package snake

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}

	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirDown, 1, 0},
		{DirUp, -1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
		{DirNone, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Offset()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Offset() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestArbitrate(t *testing.T) {
	tests := []struct {
		name      string
		committed Direction
		candidate Direction
		want      Direction
	}{
		{"no input keeps committed", DirDown, DirNone, DirDown},
		{"reversal rejected", DirDown, DirUp, DirDown},
		{"perpendicular accepted", DirDown, DirLeft, DirLeft},
		{"same direction accepted", DirDown, DirDown, DirDown},
		{"first input accepted from none", DirNone, DirUp, DirUp},
		{"idle stays idle without input", DirNone, DirNone, DirNone},
		{"right to left rejected", DirRight, DirLeft, DirRight},
		{"left to right rejected", DirLeft, DirRight, DirLeft},
		{"up to down rejected", DirUp, DirDown, DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arbitrate(tt.committed, tt.candidate); got != tt.want {
				t.Errorf("arbitrate(%v, %v) = %v, want %v", tt.committed, tt.candidate, got, tt.want)
			}
		})
	}
}

package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	got := CenteredRect(NewRect(0, 0, 80, 24), 20, 4)
	want := NewRect(30, 10, 20, 4)
	if got != want {
		t.Errorf("CenteredRect() = %+v, expected %+v", got, want)
	}

	// Larger than the outer area: starts left of and above it
	got = CenteredRect(NewRect(0, 0, 10, 10), 14, 12)
	if got.X != -2 || got.Y != -1 {
		t.Errorf("oversized CenteredRect() = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestPieceColor(t *testing.T) {
	if PieceColor(0) != ColorPiece1 {
		t.Errorf("PieceColor(0) = %d, expected ColorPiece1", PieceColor(0))
	}
	if PieceColor(4) != ColorPiece5 {
		t.Errorf("PieceColor(4) = %d, expected ColorPiece5", PieceColor(4))
	}
	if PieceColor(5) != ColorPiece1 {
		t.Error("PieceColor should wrap after the palette")
	}
	if PieceColor(-1) != ColorExtra {
		t.Error("negative index should map to the extra color")
	}
	if !PieceColor(3).IsPiece() || ColorExtra.IsPiece() {
		t.Error("IsPiece misclassifies colors")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventMoved}, {Kind: EventSolved, Level: 2, Moves: 7}}}

	if !r.Has(EventSolved) {
		t.Error("expected EventSolved")
	}
	if r.Has(EventUndone) {
		t.Error("unexpected EventUndone")
	}
	if EventSolved.String() != "solved" {
		t.Errorf("EventSolved.String() = %q", EventSolved.String())
	}
}

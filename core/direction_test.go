package core

import "testing"

func TestDirectionReversal(t *testing.T) {
	tests := []struct {
		name     string
		current  Direction
		request  Direction
		reversal bool
	}{
		{"right vs left", DirRight, DirLeft, true},
		{"left vs right", DirLeft, DirRight, true},
		{"up vs down", DirUp, DirDown, true},
		{"right vs up", DirRight, DirUp, false},
		{"right vs down", DirRight, DirDown, false},
		{"right vs right", DirRight, DirRight, false},
		{"zero vs zero", Direction{}, Direction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.request.IsReversalOf(tt.current); got != tt.reversal {
				t.Errorf("IsReversalOf = %v, want %v", got, tt.reversal)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}

	if got, ok := ParseDirection(" UP "); !ok || got != DirUp {
		t.Errorf("Expected case-insensitive parse, got %v %v", got, ok)
	}
	if _, ok := ParseDirection("north"); ok {
		t.Error("Expected unknown name to fail")
	}
}

func TestDirectionVectors(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	if c.Add(DirRight) != (Cell{1, 0}) {
		t.Error("Right should step +X")
	}
	if c.Add(DirUp) != (Cell{0, 1}) {
		t.Error("Up should step +Y")
	}
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Double opposite of %v changed it", d)
		}
	}
	if (Direction{DX: 1, DY: 1}).Valid() {
		t.Error("Diagonal should not be valid")
	}
}

func TestDirectionTextRoundTrip(t *testing.T) {
	for _, d := range Directions {
		text, _ := d.MarshalText()
		var got Direction
		if err := got.UnmarshalText(text); err != nil || got != d {
			t.Errorf("Round trip of %v gave %v, %v", d, got, err)
		}
	}

	var d Direction
	if err := d.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("Expected error for unknown direction")
	}

	var c CollisionCause
	if err := c.UnmarshalText([]byte("self")); err != nil || c != CauseSelf {
		t.Errorf("Expected CauseSelf, got %v %v", c, err)
	}
}

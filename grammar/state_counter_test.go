package grammar

import (
	"testing"
)

func TestStateCounter_Next(t *testing.T) {
	tests := []struct {
		caption    string
		start      int
		invalidate []string
		want       []string
	}{
		{
			caption: "names follow the alphabet",
			start:   0,
			want:    []string{"A", "B", "C", "D", "E"},
		},
		{
			caption: "the sequence continues with two letters past Z",
			start:   24,
			want:    []string{"Y", "Z", "Ba", "Bb"},
		},
		{
			caption: "an offset start skips the fixed machine states",
			start:   2,
			want:    []string{"C", "D", "E"},
		},
		{
			caption:    "invalidated names are skipped",
			start:      17,
			invalidate: []string{"S"},
			want:       []string{"R", "T", "U"},
		},
		{
			caption: "the end state name is never produced",
			start:   3044,
			want:    []string{"Enc", "Ene"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			c := NewStateCounter(tt.start)
			for _, name := range tt.invalidate {
				c.Invalidate(name)
			}
			for i, want := range tt.want {
				got := c.Next()
				if got != want {
					t.Fatalf("unexpected state name at #%v; want: %v, got: %v", i, want, got)
				}
			}
		})
	}
}

func TestStateName(t *testing.T) {
	tests := []struct {
		index int
		name  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "Ba"},
		{27, "Bb"},
		{51, "Bz"},
		{52, "Ca"},
		{3045, "End"},
	}
	for _, tt := range tests {
		if name := stateName(tt.index); name != tt.name {
			t.Fatalf("unexpected state name; want: %v, got: %v", tt.name, name)
		}
		if index := stateIndex(tt.name); index != tt.index {
			t.Fatalf("unexpected state index; want: %v, got: %v", tt.index, index)
		}
	}
}

package console

import "testing"

func TestNewRectClampsNegativeDimensions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		wantW  int
		wantH  int
	}{
		{"both negative", -5, -3, 0, 0},
		{"width negative", -1, 4, 0, 4},
		{"height negative", 4, -1, 4, 0},
		{"both positive", 4, 3, 4, 3},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(1, 2, tt.w, tt.h)
			if r.Width != tt.wantW || r.Height != tt.wantH {
				t.Errorf("NewRect(1,2,%d,%d) = %dx%d, want %dx%d",
					tt.w, tt.h, r.Width, r.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"zero area", NewRect(5, 5, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetry: %+v.Intersects(base) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

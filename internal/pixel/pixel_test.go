package pixel

import "testing"

func TestNewIsZeroed(t *testing.T) {
	m := New(4, 3)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	for c := 0; c < Channels; c++ {
		if len(m.Plane(c)) != 12 {
			t.Errorf("plane %d length = %d, want 12", c, len(m.Plane(c)))
		}
		for i, v := range m.Plane(c) {
			if v != 0 {
				t.Errorf("plane %d[%d] = %d, want 0", c, i, v)
			}
		}
	}
}

func TestSetAtLayout(t *testing.T) {
	m := New(3, 2)
	m.Set(2, 1, 1, 77)
	if got := m.At(2, 1, 1); got != 77 {
		t.Errorf("At(2,1,1) = %d, want 77", got)
	}
	if got := m.Plane(1)[1*3+2]; got != 77 {
		t.Errorf("plane offset = %d, want 77", got)
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x past width", 2, 0},
		{"y past height", 0, 2},
	}

	m := New(2, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) did not panic", tt.x, tt.y)
				}
			}()
			m.At(tt.x, tt.y, 0)
		})
	}
}

func TestClamp(t *testing.T) {
	m := New(2, 1)
	m.Set(0, 0, 0, -20)
	m.Set(1, 0, 0, 300)
	m.Set(0, 0, 2, 128)
	m.Clamp()

	if got := m.At(0, 0, 0); got != 0 {
		t.Errorf("clamped -20 = %d, want 0", got)
	}
	if got := m.At(1, 0, 0); got != 255 {
		t.Errorf("clamped 300 = %d, want 255", got)
	}
	if got := m.At(0, 0, 2); got != 128 {
		t.Errorf("clamped 128 = %d, want 128", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(2, 2)
	m.Set(1, 1, 2, 9)
	c := m.Clone()
	if !c.Equal(m) {
		t.Fatal("clone differs from source")
	}
	c.Set(1, 1, 2, 10)
	if m.At(1, 1, 2) != 9 {
		t.Error("mutating clone changed source")
	}
	if c.Equal(m) {
		t.Error("Equal reported true after divergence")
	}
}

func TestEqualSizeMismatch(t *testing.T) {
	if New(2, 3).Equal(New(3, 2)) {
		t.Error("matrices of different shape reported equal")
	}
}

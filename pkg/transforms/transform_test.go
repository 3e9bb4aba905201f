package transforms

import "testing"

// near reports whether a and b differ by less than float64 rounding noise.
func near(a, b complex128) bool {
	d := a - b
	return real(d)*real(d)+imag(d)*imag(d) < 1e-20
}

func TestJulia2(t *testing.T) {
	j := Julia2{C: complex(-0.8, 0.156)}

	tests := []struct {
		name string
		z    complex128
		want complex128
	}{
		{name: "origin", z: 0, want: complex(-0.8, 0.156)},
		{name: "one", z: 1, want: complex(0.2, 0.156)},
		{name: "i", z: complex(0, 1), want: complex(-1.8, 0.156)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.Next(tt.z); !near(got, tt.want) {
				t.Errorf("Next(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestForPower(t *testing.T) {
	c := complex(-0.8, 0.156)

	if _, ok := ForPower(2, c).(Julia2); !ok {
		t.Errorf("ForPower(2) should use Julia2")
	}

	j := ForPower(3, c)
	if _, ok := j.(JuliaN); !ok {
		t.Fatalf("ForPower(3) = %T, want JuliaN", j)
	}

	// 2^3 + c
	got := j.Next(2)
	want := 8 + c
	if !near(got, want) {
		t.Errorf("Next(2) = %v, want %v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	z := complex(0.3, -0.4)
	if got := Identity().Next(z); got != z {
		t.Errorf("Identity().Next(%v) = %v", z, got)
	}
}

func TestFunc(t *testing.T) {
	calls := 0
	f := Func(func(z complex128) complex128 {
		calls++
		return z + 1
	})

	if got := f.Next(1); got != 2 {
		t.Errorf("Next(1) = %v, want 2", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

package escape

import (
	"testing"

	"github.com/willbeason/julia-reveal/pkg/transforms"
)

var julia = transforms.Julia2{C: complex(-0.8, 0.156)}

func TestTimeStartsOutside(t *testing.T) {
	for _, budget := range []int{1, 2, 10, 5000} {
		if got := Time(complex(3, 3), julia, budget, DefaultRadius); got != 0 {
			t.Errorf("budget %d: Time = %d, want 0", budget, got)
		}
	}
}

func TestTimeNeverEscapes(t *testing.T) {
	for _, budget := range []int{1, 7, 100, 10000} {
		if got := Time(0, transforms.Identity(), budget, 0.5); got != Bounded {
			t.Errorf("budget %d: Time = %d, want Bounded", budget, got)
		}
	}
}

func TestTimeCountsSteps(t *testing.T) {
	// Doubling from 1 with radius 10: |z| is 1, 2, 4, 8, 16, so the check
	// before step 4 is the first to exceed 10.
	double := transforms.Linear{Multiply: 2}

	tests := []struct {
		name   string
		budget int
		want   Result
	}{
		{name: "too small", budget: 4, want: Bounded},
		{name: "exact", budget: 5, want: 4},
		{name: "large", budget: 1000, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Time(1, double, tt.budget, 10); got != tt.want {
				t.Errorf("Time = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeMapApplications(t *testing.T) {
	for _, budget := range []int{1, 3, 50, 3000} {
		calls := 0
		f := transforms.Func(func(z complex128) complex128 {
			calls++
			return z
		})

		Time(0, f, budget, 1)
		if calls > budget {
			t.Errorf("budget %d: %d map applications", budget, calls)
		}
	}
}

func TestTimeStrictComparison(t *testing.T) {
	// A point exactly on the radius has not escaped.
	if got := Time(complex(3, 0), transforms.Identity(), 10, 3); got != Bounded {
		t.Errorf("Time on the radius = %d, want Bounded", got)
	}
}

func TestTimeScenarioPixel(t *testing.T) {
	// |(-1.65-1.65i)|^2 = 5.445 < 9.
	if got := Time(complex(-1.65, -1.65), julia, 1, DefaultRadius); got != Bounded {
		t.Errorf("Time = %d, want Bounded", got)
	}
}

func TestResultEscaped(t *testing.T) {
	if Bounded.Escaped() {
		t.Error("Bounded.Escaped() = true")
	}
	if !Result(0).Escaped() {
		t.Error("Result(0).Escaped() = false")
	}
}

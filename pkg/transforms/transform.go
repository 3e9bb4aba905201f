package transforms

// A Transform is one step of an escape-time iteration.
//
// Implementations must be pure: Next may be called concurrently from many
// goroutines and must return the same value for the same input.
type Transform interface {
	Next(z complex128) complex128
}

// Func adapts an ordinary function into a Transform.
type Func func(z complex128) complex128

func (f Func) Next(z complex128) complex128 {
	return f(z)
}

var (
	_ Transform = Func(nil)
	_ Transform = Julia2{}
	_ Transform = JuliaN{}
	_ Transform = Linear{}
)

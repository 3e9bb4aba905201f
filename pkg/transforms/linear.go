package transforms

// Linear is the affine map z*Multiply + Add.
type Linear struct {
	Multiply complex128
	Add      complex128
}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}

// Identity leaves every point where it is, so no orbit ever escapes a
// radius larger than its starting norm.
func Identity() Linear {
	return Linear{Multiply: 1}
}

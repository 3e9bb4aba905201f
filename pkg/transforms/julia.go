package transforms

import "math/cmplx"

// Julia2 is the quadratic map z^2 + C.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}

// JuliaN is the generalized map z^N + C.
type JuliaN struct {
	N complex128
	C complex128
}

func (j JuliaN) Next(z complex128) complex128 {
	return cmplx.Pow(z, j.N) + j.C
}

// ForPower returns the Julia map of the given integer power. Power 2 uses
// plain multiplication rather than cmplx.Pow.
func ForPower(power int, c complex128) Transform {
	if power == 2 {
		return Julia2{C: c}
	}

	return JuliaN{N: complex(float64(power), 0), C: c}
}

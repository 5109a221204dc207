package sampling

import (
	"encoding/binary"
)

// Uint64 returns a uniform value in [0, 0xFFFFFFFFFFFFFFFF] drawn from r.
func Uint64(r PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := r.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 returns a uniform float between min and max drawn from r.
func Float64(r PRNG, min, max float64) float64 {
	f := float64(Uint64(r)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Float64Slice returns n uniform floats between min and max drawn from r.
func Float64Slice(r PRNG, n int, min, max float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = Float64(r, min, max)
	}
	return values
}

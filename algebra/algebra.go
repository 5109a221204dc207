// Package algebra implements elementary number theory over unsigned
// integers: greatest common divisor and least common multiple.
package algebra

import "errors"

// ErrUndefined is returned by GCD(0, 0), for which no greatest common
// divisor exists; the returned value is 0.
var ErrUndefined = errors.New("algebra: gcd(0, 0) is undefined")

// GCD returns the greatest common divisor of m and n by the Euclidean
// algorithm. GCD(0, n) is n and GCD(m, 0) is m, since every integer divides
// zero; GCD(0, 0) returns (0, ErrUndefined).
func GCD(m, n uint64) (uint64, error) {
	if m == 0 && n == 0 {
		return 0, ErrUndefined
	}
	for n != 0 {
		m, n = n, m%n
	}
	return m, nil
}

// LCM returns the least common multiple of m and n. LCM(0, 0) is 0.
// The product m*n is not guarded against overflow.
func LCM(m, n uint64) (uint64, error) {
	if m == 0 && n == 0 {
		return 0, nil
	}
	g, err := GCD(m, n)
	if err != nil {
		return 0, err
	}
	return m * n / g, nil
}

package rational

import "golang.org/x/exp/constraints"

// Element is the set of integer types a Rational can be built on.
// Overflow follows the wraparound of the fixed-width type and is not checked.
type Element interface {
	constraints.Signed
}

func abs[T Element](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// gcd computes the greatest common divisor of |a| and |b| in T itself.
func gcd[T Element](a T, b T) T {
	a, b = abs(a), abs(b)
	for a != 0 && b != 0 {
		if a < b {
			b = b % a
		} else {
			a = a % b
		}
	}
	if a == 0 {
		return b
	}
	return a
}

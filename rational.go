package rational

// Rational is an exact fraction n/d kept in canonical form: d > 0 and
// gcd(|n|, d) == 1, with zero stored as 0/1.
//
// The zero struct value is not a valid Rational, use Zero instead.
type Rational[T Element] struct {
	n T
	d T
}

// Zero returns 0/1.
func Zero[T Element]() Rational[T] {
	return Rational[T]{n: 0, d: 1}
}

// FromInt returns i/1.
func FromInt[T Element](i T) Rational[T] {
	return Rational[T]{n: i, d: 1}
}

// New returns n/d in canonical form. It panics if d is zero.
func New[T Element](n T, d T) Rational[T] {
	if d == 0 {
		panic("rational: zero denominator")
	}
	r := Rational[T]{n: n, d: d}
	r.canonicalizeSign()
	r.reduce()
	return r
}

func (r *Rational[T]) canonicalizeSign() {
	if r.d < 0 {
		r.n = -r.n
		r.d = -r.d
	}
}

func (r *Rational[T]) reduce() {
	if r.n == 0 {
		r.d = 1
		return
	}
	g := gcd(r.n, r.d)
	r.n = r.n / g
	r.d = r.d / g
}

// Numerator ...
func (r Rational[T]) Numerator() T {
	return r.n
}

// Denominator is always positive.
func (r Rational[T]) Denominator() T {
	return r.d
}

// Neg returns -r.
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{n: -r.n, d: r.d}
}

// AddAssign sets r to r + rhs.
func (r *Rational[T]) AddAssign(rhs Rational[T]) {
	r.n = r.n*rhs.d + r.d*rhs.n
	r.d = r.d * rhs.d
	r.reduce()
	r.canonicalizeSign()
}

// SubAssign sets r to r - rhs.
func (r *Rational[T]) SubAssign(rhs Rational[T]) {
	r.AddAssign(rhs.Neg())
}

// MulAssign sets r to r * rhs.
func (r *Rational[T]) MulAssign(rhs Rational[T]) {
	r.n = r.n * rhs.n
	r.d = r.d * rhs.d
	r.reduce()
}

// DivAssign sets r to r / rhs. It panics if rhs is zero.
func (r *Rational[T]) DivAssign(rhs Rational[T]) {
	if rhs.n == 0 {
		panic("rational: division by zero")
	}
	r.n = r.n * rhs.d
	r.d = r.d * rhs.n
	r.reduce()
	r.canonicalizeSign()
}

// Add ...
func (r Rational[T]) Add(rhs Rational[T]) Rational[T] {
	r.AddAssign(rhs)
	return r
}

// Sub ...
func (r Rational[T]) Sub(rhs Rational[T]) Rational[T] {
	r.SubAssign(rhs)
	return r
}

// Mul ...
func (r Rational[T]) Mul(rhs Rational[T]) Rational[T] {
	r.MulAssign(rhs)
	return r
}

// Div panics if rhs is zero.
func (r Rational[T]) Div(rhs Rational[T]) Rational[T] {
	r.DivAssign(rhs)
	return r
}

// Equal compares the canonical forms directly.
func (r Rational[T]) Equal(rhs Rational[T]) bool {
	return r.n == rhs.n && r.d == rhs.d
}

// NotEqual ...
func (r Rational[T]) NotEqual(rhs Rational[T]) bool {
	return !r.Equal(rhs)
}

// Less reports whether r < rhs. Both denominators are positive,
// so cross multiplication keeps the direction.
func (r Rational[T]) Less(rhs Rational[T]) bool {
	return r.n*rhs.d < rhs.n*r.d
}

// Greater reports whether r > rhs.
func (r Rational[T]) Greater(rhs Rational[T]) bool {
	return r.n*rhs.d > rhs.n*r.d
}

// LessOrEqual ...
func (r Rational[T]) LessOrEqual(rhs Rational[T]) bool {
	return r.Less(rhs) || r.Equal(rhs)
}

// GreaterOrEqual ...
func (r Rational[T]) GreaterOrEqual(rhs Rational[T]) bool {
	return r.Greater(rhs) || r.Equal(rhs)
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to
// or greater than rhs.
func (r Rational[T]) Cmp(rhs Rational[T]) int {
	switch {
	case r.Less(rhs):
		return -1
	case r.Greater(rhs):
		return 1
	default:
		return 0
	}
}

// IsZero ...
func (r Rational[T]) IsZero() bool {
	return r.n == 0
}

// Sign returns -1, 0 or +1.
func (r Rational[T]) Sign() int {
	switch {
	case r.n < 0:
		return -1
	case r.n > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |r|.
func (r Rational[T]) Abs() Rational[T] {
	return Rational[T]{n: abs(r.n), d: r.d}
}

// Scale returns v * n / d truncated toward zero.
// The intermediate product v * n must fit in T.
func (r Rational[T]) Scale(v T) T {
	return v * r.n / r.d
}

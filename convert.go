package rational

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Float64 ...
func (r Rational[T]) Float64() float64 {
	return float64(r.n) / float64(r.d)
}

// Rat returns r as an arbitrary precision big.Rat.
func (r Rational[T]) Rat() *big.Rat {
	return big.NewRat(int64(r.n), int64(r.d))
}

// Decimal returns r rounded half away from zero to the given number of
// decimal places.
func (r Rational[T]) Decimal(places int32) decimal.Decimal {
	num := decimal.New(int64(r.n), 0)
	return num.DivRound(decimal.New(int64(r.d), 0), places)
}

package rational

import "fmt"

// DisplayConfig controls textual rendering of a Rational.
// The zero value renders without padding.
type DisplayConfig struct {
	Width int
}

// Render right aligns the numerator and the denominator to conf.Width
// columns each and joins them with a slash.
func Render[T Element](conf DisplayConfig, r Rational[T]) string {
	return fmt.Sprintf("%*d/%*d", conf.Width, r.n, conf.Width, r.d)
}

// String renders r as n/d.
func (r Rational[T]) String() string {
	return Render(DisplayConfig{}, r)
}

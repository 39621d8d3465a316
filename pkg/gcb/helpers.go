package gcb

import "fmt"

// BetterPoint is image.Point but better
type BetterPoint[PointType ~float64] struct {
	X, Y PointType
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X + other.X, b.Y + other.Y}
}

func (b BetterPoint[T]) Mul(scalar T) BetterPoint[T] {
	return BetterPoint[T]{b.X * scalar, b.Y * scalar}
}

func (b BetterPoint[T]) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", float64(b.X), float64(b.Y))
}

func BetterPt[T ~float64](x, y T) BetterPoint[T] {
	return BetterPoint[T]{x, y}
}

// Redefine converts between position kinds without changing the values.
func Redefine[T2, T1 ~float64](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}

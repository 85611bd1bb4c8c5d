package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Step returns the neighbouring cell in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// Manhattan returns |dx| + |dy|
func Manhattan(a, b Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|, |dy|)
func Chebyshev(a, b Point) int {
	return max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}

// Adjacent reports whether a and b are orthogonal neighbours
func Adjacent(a, b Point) bool {
	return Manhattan(a, b) == 1
}

// Abs returns the absolute value of an int
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq for float64 comparisons.
const (
	Epsilon = 1e-9
)

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are public because they are plain data: v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the (0, 0) vector.
var Zero = Vector2D{}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers returning new values: a Vector2D is never mutated in place,
// callers reassign (b.Vel = b.Vel.Add(b.Acc)).
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies componentwise. A zero component of other leaves the
// matching component of v untouched.
func (v Vector2D) Mul(other Vector2D) Vector2D {
	return Vector2D{v.X * identityIfZero(other.X), v.Y * identityIfZero(other.Y)}
}

// Div divides componentwise. A zero component of other leaves the
// matching component of v untouched, so Div never produces Inf or NaN.
func (v Vector2D) Div(other Vector2D) Vector2D {
	return Vector2D{v.X / identityIfZero(other.X), v.Y / identityIfZero(other.Y)}
}

// Scale multiplies both components by scalar.
func (v Vector2D) Scale(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// DivScalar divides both components by scalar; zero is treated as 1.
func (v Vector2D) DivScalar(scalar float64) Vector2D {
	return v.Div(Vector2D{scalar, scalar})
}

func identityIfZero(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (Euclidean norm) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vector2D) Normalize() Vector2D {
	return v.DivScalar(v.Len())
}

// Limit caps the magnitude at max. A vector longer than max is rescaled to
// exactly max keeping its direction, anything else is returned unchanged.
func (v Vector2D) Limit(max float64) Vector2D {
	if v.Len() > max {
		return v.Normalize().Scale(max)
	}
	return v
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by angle (in radians) around the origin (0,0).
func (v Vector2D) Rotate(angle float64) Vector2D {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return Vector2D{
		X: v.X*cosTheta - v.Y*sinTheta,
		Y: v.X*sinTheta + v.Y*cosTheta,
	}
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

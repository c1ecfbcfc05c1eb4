// Package geom provides the small set of 3D vector operations used by the
// structural hierarchy: distances, unit vectors, quaternion rotation and
// centres of mass.
package geom

import "math"

// Vec is a point or direction in 3D space.
type Vec [3]float64

// X returns the first component of the vector.
func (v Vec) X() float64 { return v[0] }

// Y returns the second component of the vector.
func (v Vec) Y() float64 { return v[1] }

// Z returns the third component of the vector.
func (v Vec) Z() float64 { return v[2] }

// Add returns the component-wise sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the component-wise difference of v and u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v multiplied by the scalar s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the cross product of v and u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// CentreOfMass returns the weighted mean position of points. If masses is
// empty or its length does not match points, the unweighted geometric centre
// is returned instead.
func CentreOfMass(points []Vec, masses []float64) Vec {
	var com Vec
	if len(points) == 0 {
		return com
	}
	if len(masses) != len(points) {
		for _, p := range points {
			com = com.Add(p)
		}
		return com.Scale(1 / float64(len(points)))
	}
	var total float64
	for i, p := range points {
		com = com.Add(p.Scale(masses[i]))
		total += masses[i]
	}
	return com.Scale(1 / total)
}

package geom

import "math"

// Quat is a rotation quaternion.
type Quat struct {
	R float64
	V Vec
}

// RotationAbout builds the quaternion describing a rotation of angle degrees
// about the given axis. The axis need not be normalised.
func RotationAbout(angle float64, axis Vec) Quat {
	return rotationAboutRad(angle*math.Pi/180, axis)
}

func rotationAboutRad(angle float64, axis Vec) Quat {
	half := angle / 2
	return Quat{
		R: math.Cos(half),
		V: axis.Unit().Scale(math.Sin(half)),
	}
}

// Rotate applies the rotation described by q to v about a point. A rotation
// about the origin is performed when point is the zero vector.
func (q Quat) Rotate(v, point Vec) Vec {
	rel := v.Sub(point)
	// v' = v + 2q_r (q_v x v) + 2 q_v x (q_v x v)
	c := q.V.Cross(rel)
	rot := rel.Add(c.Scale(2 * q.R)).Add(q.V.Cross(c).Scale(2))
	return rot.Add(point)
}

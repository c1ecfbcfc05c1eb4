// Package rmsd measures the similarity of paired coordinate lists as a
// root-mean-square deviation, either on the coordinates as given or after an
// optimal rigid superposition.
package rmsd

import (
	"fmt"
	"math"

	"github.com/isambard-uob/ampal/geom"

	matrix "github.com/skelterjohn/go.matrix"
)

// Paired computes the RMSD of two coordinate lists in their current poses.
// Coordinates are compared index by index with no superposition, so the
// value reflects both conformational difference and relative placement. An
// error is returned if the lists are empty or their lengths differ.
func Paired(xs, ys []geom.Vec) (float64, error) {
	if err := checkPairing(xs, ys); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range xs {
		d := xs[i].Sub(ys[i])
		sum += d.Dot(d)
	}
	return math.Sqrt(sum / float64(len(xs))), nil
}

// Superposed computes the minimal RMSD over all rigid superpositions of xs
// onto ys, using the Kabsch algorithm described at
// http://cnx.org/content/m11608/latest/
//
// A brief, high-level overview:
//
// Build the 3xN matrices X and Y containing, for the sets xs and ys
// respectively, the coordinates for each of the N atoms after centering
// the atoms by subtracting the centroids.
//
// Compute the covariance matrix C=X(Y^T)
//
// Compute the SVD (Singular Value Decomposition) of C=VS(W^T)
//
// Compute d=sign(det(C))
//
// Compute the optimal rotation U as U = W([1 0 0] [0 1 0] [0 0 d])(V^T)
//
// An error is returned if the lists are empty, if their lengths differ or
// if the SVD fails to converge.
func Superposed(xs, ys []geom.Vec) (float64, error) {
	if err := checkPairing(xs, ys); err != nil {
		return 0, err
	}

	cx := centroid(xs)
	cy := centroid(ys)

	// Two 3xN matrices of centred coordinates, row per axis.
	cols := len(xs)
	X := make([]float64, 3*cols)
	Y := make([]float64, 3*cols)
	for i := range xs {
		for r := 0; r < 3; r++ {
			X[r*cols+i] = xs[i][r] - cx[r]
			Y[r*cols+i] = ys[i][r] - cy[r]
		}
	}
	Xmat := matrix.MakeDenseMatrix(X, 3, cols)
	Ymat := matrix.MakeDenseMatrix(Y, 3, cols)

	C, err := Xmat.TimesDense(Ymat.Transpose())
	if err != nil {
		return 0, fmt.Errorf("covariance: %v", err)
	}
	det := C.Det()
	V, _, W, err := C.SVD()
	if err != nil {
		return 0, fmt.Errorf("svd: %v", err)
	}

	// A negative determinant means the naive rotation is improper (a
	// reflection). Flipping the sign of W's last column makes it proper.
	if det < 0 {
		adjust := matrix.MakeDenseMatrix([]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, -1,
		}, 3, 3)
		W, err = W.TimesDense(adjust)
		if err != nil {
			return 0, fmt.Errorf("improper rotation fix: %v", err)
		}
	}
	U, err := W.TimesDense(V.Transpose())
	if err != nil {
		return 0, fmt.Errorf("rotation: %v", err)
	}

	Xbest, err := U.TimesDense(Xmat)
	if err != nil {
		return 0, fmt.Errorf("superposition: %v", err)
	}

	sum := 0.0
	for r := 0; r < 3; r++ {
		for c := 0; c < cols; c++ {
			d := Xbest.Get(r, c) - Ymat.Get(r, c)
			sum += d * d
		}
	}
	return math.Sqrt(sum / float64(cols)), nil
}

func checkPairing(xs, ys []geom.Vec) error {
	if len(xs) == 0 || len(ys) == 0 {
		return fmt.Errorf("rmsd needs non-empty coordinate lists")
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("rmsd needs equal length coordinate lists, "+
			"got %d and %d", len(xs), len(ys))
	}
	return nil
}

func centroid(vs []geom.Vec) geom.Vec {
	var c geom.Vec
	for _, v := range vs {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(vs)))
}

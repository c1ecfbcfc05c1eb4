package rmsd

import (
	"fmt"
	"math"
	"testing"

	"github.com/isambard-uob/ampal/geom"
)

func ExampleSuperposed() {
	xs := []geom.Vec{
		{-2.803, -15.373, 24.556},
		{0.893, -16.062, 25.147},
		{1.368, -12.371, 25.885},
		{-1.651, -12.153, 28.177},
		{-0.440, -15.218, 30.068},
		{2.551, -13.273, 31.372},
		{0.105, -11.330, 33.567},
	}
	ys := []geom.Vec{
		{-14.739, -18.673, 15.040},
		{-12.473, -15.810, 16.074},
		{-14.802, -13.307, 14.408},
		{-17.782, -14.852, 16.171},
		{-16.124, -14.617, 19.584},
		{-15.029, -11.037, 18.902},
		{-18.577, -10.001, 17.996},
	}
	rms, err := Superposed(xs, ys)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("RMSD: %f\n", rms)
	// Output:
	// RMSD: 0.719106
}

func TestPairedIdentical(t *testing.T) {
	xs := []geom.Vec{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}}
	rms, err := Paired(xs, xs)
	if err != nil {
		t.Fatalf("Paired: %v", err)
	}
	if rms != 0 {
		t.Errorf("identical lists: got %f, want 0", rms)
	}
}

func TestPairedTranslated(t *testing.T) {
	xs := []geom.Vec{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}}
	ys := make([]geom.Vec, len(xs))
	for i, v := range xs {
		ys[i] = v.Add(geom.Vec{3, 0, 0})
	}
	rms, err := Paired(xs, ys)
	if err != nil {
		t.Fatalf("Paired: %v", err)
	}
	if math.Abs(rms-3) > 1e-9 {
		t.Errorf("uniform 3A shift: got %f, want 3", rms)
	}
}

func TestSuperposedRigidCopy(t *testing.T) {
	xs := []geom.Vec{
		{0, 0, 0}, {1.5, 0, 0}, {1.5, 1.5, 0}, {0, 1.5, 1.5}, {2, 2, 2},
	}
	// A rotated and translated copy superposes back to zero deviation.
	ys := make([]geom.Vec, len(xs))
	for i, v := range xs {
		rotated := geom.RotationAbout(37, geom.Vec{1, 2, 3}).Rotate(v, geom.Vec{})
		ys[i] = rotated.Add(geom.Vec{-4, 5, 6})
	}
	rms, err := Superposed(xs, ys)
	if err != nil {
		t.Fatalf("Superposed: %v", err)
	}
	if rms > 1e-6 {
		t.Errorf("rigid copy: got %f, want ~0", rms)
	}
}

func TestLengthMismatch(t *testing.T) {
	xs := []geom.Vec{{0, 0, 0}, {1, 0, 0}}
	ys := []geom.Vec{{0, 0, 0}}
	if _, err := Paired(xs, ys); err == nil {
		t.Error("Paired accepted mismatched lengths")
	}
	if _, err := Superposed(xs, ys); err == nil {
		t.Error("Superposed accepted mismatched lengths")
	}
	if _, err := Paired(nil, nil); err == nil {
		t.Error("Paired accepted empty lists")
	}
}

// Package align superposes structures by rigid-body moves driven by a
// Metropolis Monte Carlo search.
package align

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/isambard-uob/ampal/ampal"
	"github.com/isambard-uob/ampal/geom"
	"github.com/isambard-uob/ampal/rmsd"
)

// boltzmann is the Boltzmann constant in kcal/mol.K, matching the energy
// scale of the acceptance test.
const boltzmann = 1.9872041e-3

// EvalFunc scores a pose. Lower is better.
type EvalFunc func(*ampal.Polymer) float64

// Optimizer runs a Metropolis Monte Carlo search over rigid-body poses of
// a polymer. Each round perturbs a copy of the working pose, scores it and
// accepts or rejects the move by the Metropolis criterion.
type Optimizer struct {
	// Eval scores each proposed pose.
	Eval EvalFunc

	// Rand drives move generation and the acceptance test. Tests can
	// set a seeded source; left nil, a time-seeded source is used.
	Rand *rand.Rand

	// StopWhen, if non-nil, ends the search early once the best energy
	// is less than or equal to it.
	StopWhen *float64

	// When true, per-round progress is printed to stderr.
	Verbose bool

	pose          *ampal.Polymer
	currentEnergy float64
	bestEnergy    float64
	bestPose      *ampal.Polymer
}

// New creates an optimizer over a starting pose. The pose is held by
// reference and is not modified; accepted improvements replace it
// internally.
func New(eval EvalFunc, pose *ampal.Polymer) *Optimizer {
	return &Optimizer{
		Eval: eval,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		pose: pose,
	}
}

// BestEnergy returns the lowest energy seen so far.
func (o *Optimizer) BestEnergy() float64 {
	return o.bestEnergy
}

// BestPose returns a copy of the pose that scored the best energy.
func (o *Optimizer) BestPose() *ampal.Polymer {
	return o.bestPose
}

// Run performs the Monte Carlo search. Each round copies the working pose
// and either rotates it about its own centre of mass, three times out of
// four, or translates it. Rotation angles are drawn uniformly from
// [0, maxAngle) degrees and translations from [0, maxDistance) angstroms,
// both along a uniformly random axis.
//
// An accepted move that is not a new best updates only the current energy:
// the working pose advances when a new best is found, so the search
// explores from the best pose rather than the last accepted one.
func (o *Optimizer) Run(rounds int, maxAngle, maxDistance, temp float64) {
	o.currentEnergy = o.Eval(o.pose)
	o.bestEnergy = o.currentEnergy
	o.bestPose = o.pose.Copy()

	for round := 0; round < rounds; round++ {
		working := o.pose.Copy()
		axis := randomAxis(o.Rand)
		if o.Rand.Intn(4) < 3 {
			angle := o.Rand.Float64() * maxAngle
			ampal.Rotate(working, angle, axis, ampal.CentreOfMass(working))
		} else {
			ampal.Translate(working, axis.Scale(o.Rand.Float64()*maxDistance))
		}
		proposed := o.Eval(working)
		accepted := acceptMove(proposed, o.currentEnergy, temp, o.Rand)
		if accepted {
			o.currentEnergy = proposed
			if proposed < o.bestEnergy {
				o.pose = working
				o.bestEnergy = proposed
				o.bestPose = working.Copy()
			}
		}
		if o.Verbose {
			verdict := "DECLINED"
			if accepted {
				verdict = "ACCEPTED"
			}
			fmt.Fprintf(os.Stderr,
				"\rRound: %d, Current: %.2f, Proposed: %.2f (best %.2f), %s.",
				round, o.currentEnergy, proposed, o.bestEnergy, verdict)
		}
		if o.StopWhen != nil && o.bestEnergy <= *o.StopWhen {
			break
		}
	}
	if o.Verbose {
		fmt.Fprintln(os.Stderr)
	}
}

// acceptMove applies the Metropolis criterion. A non-positive or near-zero
// temperature rejects every move, including downhill ones.
func acceptMove(new, old, temp float64, rng *rand.Rand) bool {
	if temp <= 0 || math.Abs(temp) < 1e-8 {
		return false
	}
	if new < old {
		return true
	}
	return math.Exp(-(new-old)/(boltzmann*temp)) > rng.Float64()
}

func randomAxis(rng *rand.Rand) geom.Vec {
	v := geom.Vec{
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
	}
	return v.Unit()
}

// Backbones superposes the backbone of mobile onto reference. The mobile
// polymer is copied and its centre of mass translated onto the
// reference's, then a 500 round Monte Carlo search refines the pose with
// moves of up to 10 degrees and 1 angstrom at a temperature of 100. The
// objective is the index-paired backbone RMSD.
//
// A non-nil stopWhen ends the search early once the best RMSD reaches it.
// The best RMSD and the corresponding pose are returned; mobile itself is
// not modified. An error is returned if the two backbones have different
// atom counts.
func Backbones(reference, mobile *ampal.Polymer, stopWhen *float64, verbose bool) (float64, *ampal.Polymer, error) {
	refCoords := ampal.Coords(reference.Backbone())
	if len(refCoords) != len(ampal.Coords(mobile.Backbone())) {
		return 0, nil, fmt.Errorf("backbones differ in size: %d and %d atoms",
			len(refCoords), len(ampal.Coords(mobile.Backbone())))
	}

	working := mobile.Copy()
	shift := ampal.CentreOfMass(reference).Sub(ampal.CentreOfMass(working))
	ampal.Translate(working, shift)

	eval := func(pose *ampal.Polymer) float64 {
		score, err := rmsd.Paired(ampal.Coords(pose.Backbone()), refCoords)
		if err != nil {
			panic(err)
		}
		return score
	}
	opt := New(eval, working)
	opt.StopWhen = stopWhen
	opt.Verbose = verbose
	opt.Run(500, 10, 1, 100)
	return opt.BestEnergy(), opt.BestPose(), nil
}

package fictplay

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

// Simulation is a resumable cursor over a single fictitious play run,
// created by SimulateIter. It yields one belief pair per round.
type Simulation struct {
	fp       *FictitiousPlay
	t        int
	tsLength int
}

// SimulateIter restarts the engine (reinitializing beliefs and the step
// schedule) and returns a cursor producing tsLength belief pairs.
// Element 0 is the initial belief pair; element t reflects t rounds of
// prior play and belief updates. A nil init draws fresh random initial
// beliefs.
func (fp *FictitiousPlay) SimulateIter(tsLength int, init [][]float64) (*Simulation, error) {
	if err := fp.SetInitBeliefs(init); err != nil {
		return nil, err
	}

	return &Simulation{fp: fp, tsLength: tsLength}, nil
}

// Next yields the belief pair for the current round, then advances the
// engine by one play/update step. It returns false once tsLength pairs
// have been produced. The returned vectors are copies and remain valid
// after further iteration.
func (s *Simulation) Next() ([2][]float64, bool) {
	if s.t >= s.tsLength {
		return [2][]float64{}, false
	}

	beliefs := s.fp.CurrentBeliefs()
	s.fp.Play()
	s.fp.UpdateBeliefs(s.fp.stepSize(s.t))
	s.t++
	return beliefs, true
}

// Simulate materializes a run of tsLength rounds into one matrix per
// player. Row t of each matrix holds that player's belief at round t,
// so row 0 is the initial belief.
func (fp *FictitiousPlay) Simulate(tsLength int, init [][]float64) ([2]*mat.Dense, error) {
	var out [2]*mat.Dense
	if tsLength < 1 {
		return out, errors.Errorf("tsLength must be positive, got %d", tsLength)
	}

	for i, size := range fp.beliefSizes {
		out[i] = mat.NewDense(tsLength, size, nil)
	}

	sim, err := fp.SimulateIter(tsLength, init)
	if err != nil {
		return [2]*mat.Dense{}, err
	}

	for t := 0; ; t++ {
		beliefs, ok := sim.Next()
		if !ok {
			break
		}

		for i, belief := range beliefs {
			out[i].SetRow(t, belief)
		}
	}

	return out, nil
}

// Replicate runs numReps independent simulations of T+1 rounds each and
// records each run's final belief pair. Row j of each returned matrix
// is run j's terminal belief for that player. The same init is used for
// every run, so a nil init draws fresh random initial beliefs per run.
func (fp *FictitiousPlay) Replicate(T, numReps int, init [][]float64) ([2]*mat.Dense, error) {
	var out [2]*mat.Dense
	if T < 0 {
		return out, errors.Errorf("T must be non-negative, got %d", T)
	}
	if numReps < 1 {
		return out, errors.Errorf("numReps must be positive, got %d", numReps)
	}

	for i, size := range fp.beliefSizes {
		out[i] = mat.NewDense(numReps, size, nil)
	}

	logEvery := numReps / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for j := 0; j < numReps; j++ {
		sim, err := fp.SimulateIter(T+1, init)
		if err != nil {
			return [2]*mat.Dense{}, err
		}

		var last [2][]float64
		for beliefs, ok := sim.Next(); ok; beliefs, ok = sim.Next() {
			last = beliefs
		}

		for i, belief := range last {
			out[i].SetRow(j, belief)
		}

		if (j+1)%logEvery == 0 {
			glog.V(1).Infof("Completed %d out of %d replications", j+1, numReps)
		}
	}

	return out, nil
}

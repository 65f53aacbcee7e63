// Package fictplay simulates fictitious play for two-player normal-form
// games. Each round every player best-responds to its current belief
// about the opponent's mixed strategy, then shifts that belief toward a
// point mass on the opponent's realized action with a decaying step
// size, so that beliefs track the empirical frequency of play.
package fictplay

import (
	"math"

	"github.com/pkg/errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/gamedyn/fictplay/normalform"
)

// StepSize maps a 0-based round index to the weight given to the newest
// observation when updating a belief. Values must lie in (0, 1].
type StepSize func(t int) float64

// DecreasingGain is the classical averaging schedule 1/(t+2). With this
// schedule the belief update is equivalent to incremental
// empirical-frequency averaging of the opponent's past actions.
func DecreasingGain(t int) float64 {
	return 1.0 / float64(t+2)
}

const distributionTol = 1e-9

// FictitiousPlay runs the belief/best-response recurrence for a
// two-player normal-form game. Each player's belief is a probability
// vector over the opponent's actions, mutated in place every round.
type FictitiousPlay struct {
	game        *normalform.Game
	beliefSizes [2]int
	beliefs     [2][]float64
	actions     [2]int
	stepSize    StepSize
	samplers    [2]*distmv.Dirichlet
}

// New creates an engine for the given pre-built two-player game. The
// game is referenced, not copied. Initial beliefs are drawn from a
// uniform Dirichlet distribution over the simplex of the appropriate
// dimension, and the step-size schedule defaults to DecreasingGain.
func New(g *normalform.Game) (*FictitiousPlay, error) {
	if g == nil {
		return nil, errors.New("game must not be nil")
	}

	fp := &FictitiousPlay{
		game:     g,
		stepSize: DecreasingGain,
	}
	for i := range fp.beliefs {
		fp.beliefSizes[i] = g.Player(1 - i).NumActions()
		fp.beliefs[i] = make([]float64, fp.beliefSizes[i])
	}

	fp.seedSamplers(rand.Uint64())
	if err := fp.SetInitBeliefs(nil); err != nil {
		return nil, err
	}

	return fp, nil
}

// NewFromMatrix creates an engine for the symmetric game defined by a
// square payoff matrix shared by both players.
func NewFromMatrix(a [][]float64) (*FictitiousPlay, error) {
	g, err := normalform.FromMatrix(a)
	if err != nil {
		return nil, err
	}

	return New(g)
}

// NewFromBimatrix creates an engine from explicit per-player payoff
// matrices, indexed as [player][own action][opponent action].
func NewFromBimatrix(payoffs [][][]float64) (*FictitiousPlay, error) {
	g, err := normalform.FromBimatrix(payoffs)
	if err != nil {
		return nil, err
	}

	return New(g)
}

// Seed reseeds the source used to draw random initial beliefs.
func (fp *FictitiousPlay) Seed(seed uint64) {
	fp.seedSamplers(seed)
}

func (fp *FictitiousPlay) seedSamplers(seed uint64) {
	src := rand.NewSource(seed)
	for i, n := range fp.beliefSizes {
		alpha := make([]float64, n)
		for j := range alpha {
			alpha[j] = 1.0
		}

		fp.samplers[i] = distmv.NewDirichlet(alpha, src)
	}
}

// SetStepSize replaces the step-size schedule. A nil schedule restores
// the default DecreasingGain.
func (fp *FictitiousPlay) SetStepSize(f StepSize) {
	if f == nil {
		f = DecreasingGain
	}

	fp.stepSize = f
}

func (fp *FictitiousPlay) Game() *normalform.Game {
	return fp.game
}

// BeliefSizes returns the length of each player's belief vector, i.e.
// the opponent's number of actions.
func (fp *FictitiousPlay) BeliefSizes() [2]int {
	return fp.beliefSizes
}

// CurrentBeliefs returns a copy of each player's current belief about
// the opponent's mixed strategy.
func (fp *FictitiousPlay) CurrentBeliefs() [2][]float64 {
	var result [2][]float64
	for i, belief := range fp.beliefs {
		result[i] = append([]float64(nil), belief...)
	}

	return result
}

// CurrentActions returns the actions chosen in the most recent call to
// Play.
func (fp *FictitiousPlay) CurrentActions() [2]int {
	return fp.actions
}

// SetInitBeliefs sets each player's belief. If init is nil, each belief
// is drawn independently from a uniform Dirichlet distribution.
// Explicit beliefs must be a pair of probability vectors of the correct
// lengths; they are validated and then copied.
func (fp *FictitiousPlay) SetInitBeliefs(init [][]float64) error {
	if init == nil {
		for i, sampler := range fp.samplers {
			sampler.Rand(fp.beliefs[i])
		}

		return nil
	}

	if len(init) != 2 {
		return errors.Errorf("expected 2 initial beliefs, got %d", len(init))
	}

	for i, belief := range init {
		if err := validateBelief(belief, fp.beliefSizes[i]); err != nil {
			return errors.Wrapf(err, "player %d initial belief invalid", i)
		}
	}

	for i, belief := range init {
		copy(fp.beliefs[i], belief)
	}

	return nil
}

func validateBelief(belief []float64, size int) error {
	if len(belief) != size {
		return errors.Errorf("has length %d, expected %d", len(belief), size)
	}

	for j, p := range belief {
		if p < 0 {
			return errors.Errorf("has negative probability %v at index %d", p, j)
		}
	}

	if sum := floats.Sum(belief); math.Abs(sum-1.0) > distributionTol {
		return errors.Errorf("has probabilities summing to %v, expected 1", sum)
	}

	return nil
}

// Play sets each player's current action to a best response against
// that player's current belief.
func (fp *FictitiousPlay) Play() {
	for i := range fp.actions {
		fp.actions[i] = fp.game.Player(i).BestResponse(fp.beliefs[i])
	}
}

// UpdateBeliefs shifts each player's belief toward a point mass on the
// opponent's current action:
//
//	belief[i] = (1-stepSize)*belief[i] + stepSize*onehot(action[1-i])
//
// Both updates read the same pre-update action pair, so the two players
// update simultaneously.
func (fp *FictitiousPlay) UpdateBeliefs(stepSize float64) {
	for i, belief := range fp.beliefs {
		floats.Scale(1.0-stepSize, belief)
		belief[fp.actions[1-i]] += stepSize
	}
}

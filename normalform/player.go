package normalform

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"gonum.org/v1/gonum/floats"
)

// Player holds one player's payoff matrix in a two-player normal-form
// game. Payoffs are indexed as [own action][opponent action].
type Player struct {
	payoffs [][]float64
}

// NewPlayer creates a Player with the given payoff matrix. The matrix
// is retained, not copied, and must not be modified afterwards.
func NewPlayer(payoffs [][]float64) (*Player, error) {
	if len(payoffs) == 0 {
		return nil, errors.New("player must have at least one action")
	}

	nOpponentActions := len(payoffs[0])
	if nOpponentActions == 0 {
		return nil, errors.New("opponent must have at least one action")
	}

	for i, row := range payoffs {
		if len(row) != nOpponentActions {
			return nil, errors.Errorf("payoff matrix is ragged: row %d has %d entries, expected %d",
				i, len(row), nOpponentActions)
		}
	}

	return &Player{payoffs: payoffs}, nil
}

func (p *Player) NumActions() int {
	return len(p.payoffs)
}

func (p *Player) NumOpponentActions() int {
	return len(p.payoffs[0])
}

// Payoff returns the payoff of playing ownAction when the opponent
// plays oppAction.
func (p *Player) Payoff(ownAction, oppAction int) float64 {
	return p.payoffs[ownAction][oppAction]
}

// ExpectedPayoffs returns the expected payoff of each of the player's
// actions when the opponent plays the mixed strategy belief.
func (p *Player) ExpectedPayoffs(belief []float64) []float64 {
	utilities := make([]float64, len(p.payoffs))
	for i, row := range p.payoffs {
		utilities[i] = floats.Dot(row, belief)
	}

	return utilities
}

// BestResponse returns an action maximizing the player's expected
// payoff under the given belief about the opponent's mixed strategy.
// Ties are broken uniformly at random.
func (p *Player) BestResponse(belief []float64) int {
	_, br := argMax(p.ExpectedPayoffs(belief))
	return br
}

func argMax(vs []float64) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && rand.Intn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}

// Package normalform provides two-player normal-form games: per-player
// payoff matrices, expected payoffs against a mixed strategy, and best
// responses with random tie-breaking.
package normalform

import (
	"github.com/pkg/errors"
)

// Game is an immutable two-player normal-form game.
type Game struct {
	players [2]*Player
}

// NewGame creates a game from the two players' payoff matrices. The
// matrices must have compatible shapes: each player's opponent
// dimension must equal the other player's number of actions.
func NewGame(p0, p1 *Player) (*Game, error) {
	if p0 == nil || p1 == nil {
		return nil, errors.New("game requires exactly 2 players")
	}

	if p0.NumOpponentActions() != p1.NumActions() || p1.NumOpponentActions() != p0.NumActions() {
		return nil, errors.Errorf("player payoff shapes are incompatible: %dx%d vs %dx%d",
			p0.NumActions(), p0.NumOpponentActions(),
			p1.NumActions(), p1.NumOpponentActions())
	}

	return &Game{players: [2]*Player{p0, p1}}, nil
}

// FromMatrix creates a symmetric two-player game in which both players
// share the given square payoff matrix.
func FromMatrix(a [][]float64) (*Game, error) {
	p, err := NewPlayer(a)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payoff matrix")
	}

	if p.NumActions() != p.NumOpponentActions() {
		return nil, errors.Errorf("symmetric game requires a square payoff matrix, got %dx%d",
			p.NumActions(), p.NumOpponentActions())
	}

	return NewGame(p, p)
}

// FromBimatrix creates a game from explicit per-player payoff matrices,
// indexed as [player][own action][opponent action]. The first dimension
// must be exactly 2.
func FromBimatrix(payoffs [][][]float64) (*Game, error) {
	if len(payoffs) != 2 {
		return nil, errors.Errorf("bimatrix must have exactly 2 players, got %d", len(payoffs))
	}

	p0, err := NewPlayer(payoffs[0])
	if err != nil {
		return nil, errors.Wrap(err, "player 0 payoffs invalid")
	}

	p1, err := NewPlayer(payoffs[1])
	if err != nil {
		return nil, errors.Wrap(err, "player 1 payoffs invalid")
	}

	return NewGame(p0, p1)
}

// NumPlayers is always 2.
func (g *Game) NumPlayers() int {
	return 2
}

func (g *Game) Player(i int) *Player {
	return g.players[i]
}

// NumActions returns the number of actions available to each player.
func (g *Game) NumActions() [2]int {
	return [2]int{g.players[0].NumActions(), g.players[1].NumActions()}
}

// PureToMixed converts a pure action into the equivalent mixed
// strategy, a point mass on the given action.
func PureToMixed(numActions, action int) []float64 {
	mixed := make([]float64, numActions)
	mixed[action] = 1.0
	return mixed
}

package normalform

import (
	"reflect"
	"testing"
)

func TestFromMatrix(t *testing.T) {
	g, err := FromMatrix([][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	if n := g.NumPlayers(); n != 2 {
		t.Errorf("expected 2 players, got %d", n)
	}

	if got := g.NumActions(); got != [2]int{3, 3} {
		t.Errorf("expected 3 actions per player, got %v", got)
	}

	if g.Player(0).Payoff(0, 2) != g.Player(1).Payoff(0, 2) {
		t.Error("symmetric game players should share payoffs")
	}
}

func TestFromMatrixNonSquare(t *testing.T) {
	_, err := FromMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err == nil {
		t.Error("expected error for non-square symmetric payoff matrix")
	}
}

func TestFromBimatrix(t *testing.T) {
	g, err := FromBimatrix([][][]float64{
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := g.NumActions(); got != [2]int{2, 2} {
		t.Errorf("expected 2 actions per player, got %v", got)
	}

	if got := g.Player(1).Payoff(0, 0); got != -1 {
		t.Errorf("expected payoff -1, got %v", got)
	}
}

func TestFromBimatrixWrongNumPlayers(t *testing.T) {
	m := [][]float64{{0, 1}, {1, 0}}

	if _, err := FromBimatrix([][][]float64{m}); err == nil {
		t.Error("expected error for 1-player bimatrix")
	}

	if _, err := FromBimatrix([][][]float64{m, m, m}); err == nil {
		t.Error("expected error for 3-player bimatrix")
	}
}

func TestFromBimatrixIncompatibleShapes(t *testing.T) {
	_, err := FromBimatrix([][][]float64{
		{{1, -1}, {-1, 1}},
		{{0, 1, 2}, {2, 1, 0}, {1, 1, 1}},
	})
	if err == nil {
		t.Error("expected error for incompatible player payoff shapes")
	}
}

func TestNewGameNilPlayer(t *testing.T) {
	p, err := NewPlayer([][]float64{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewGame(p, nil); err == nil {
		t.Error("expected error for nil player")
	}
}

func TestPureToMixed(t *testing.T) {
	got := PureToMixed(3, 1)
	expected := []float64{0, 1, 0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

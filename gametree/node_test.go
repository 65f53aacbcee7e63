package gametree

import (
	"reflect"
	"testing"

	"github.com/timpalpant/go-cfr"

	"github.com/gamedyn/fictplay/normalform"
)

func matchingPennies(t *testing.T) *normalform.Game {
	t.Helper()

	g, err := normalform.FromBimatrix([][][]float64{
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	return g
}

func TestTreeStructure(t *testing.T) {
	root := New(matchingPennies(t))

	if root.Type() != cfr.PlayerNodeType {
		t.Errorf("root should be a player node, got %v", root.Type())
	}
	if root.Player() != 0 {
		t.Errorf("player 0 moves first, got player %d", root.Player())
	}
	if root.NumChildren() != 2 {
		t.Errorf("expected 2 children at root, got %d", root.NumChildren())
	}

	mid := root.GetChild(0).(*Node)
	if mid.Type() != cfr.PlayerNodeType {
		t.Errorf("middle node should be a player node, got %v", mid.Type())
	}
	if mid.Player() != 1 {
		t.Errorf("player 1 moves second, got player %d", mid.Player())
	}
	if mid.Parent().(*Node) != root {
		t.Error("child should link back to its parent")
	}

	leaf := mid.GetChild(1).(*Node)
	if leaf.Type() != cfr.TerminalNodeType {
		t.Errorf("leaf should be terminal, got %v", leaf.Type())
	}
	if leaf.NumChildren() != 0 {
		t.Errorf("terminal node should have 0 children, got %d", leaf.NumChildren())
	}
}

func TestUtilities(t *testing.T) {
	root := New(matchingPennies(t))

	// Player 0 plays heads.
	mid := root.GetChild(0)

	// Matched pennies: player 0 wins.
	matched := mid.GetChild(0)
	if u := matched.Utility(0); u != 1 {
		t.Errorf("expected utility 1 for player 0, got %v", u)
	}
	if u := matched.Utility(1); u != -1 {
		t.Errorf("expected utility -1 for player 1, got %v", u)
	}

	// Mismatched pennies: player 1 wins.
	mismatched := mid.GetChild(1)
	if u := mismatched.Utility(0); u != -1 {
		t.Errorf("expected utility -1 for player 0, got %v", u)
	}
	if u := mismatched.Utility(1); u != 1 {
		t.Errorf("expected utility 1 for player 1, got %v", u)
	}
}

func TestInfoSetHidesSimultaneousMove(t *testing.T) {
	root := New(matchingPennies(t))

	// Player 1 must not be able to distinguish which action player 0
	// took: both middle nodes share one player-1 information set.
	key0 := root.GetChild(0).InfoSet(1).Key()
	key1 := root.GetChild(1).InfoSet(1).Key()
	if key0 != key1 {
		t.Errorf("player 1 info sets differ across player 0's actions: %q vs %q", key0, key1)
	}

	if rootKey := root.InfoSet(0).Key(); rootKey == key0 {
		t.Error("the two players' info sets should be distinct")
	}
}

func TestInfoSetMarshalRoundTrip(t *testing.T) {
	root := New(matchingPennies(t))

	is := root.InfoSet(0).(*infoSet)
	buf, err := is.MarshalBinary()
	if err != nil {
		t.Error(err)
	}

	var reloaded infoSet
	if err := reloaded.UnmarshalBinary(buf); err != nil {
		t.Error(err)
	}

	if !reflect.DeepEqual(*is, reloaded) {
		t.Errorf("expected: %v, got: %v", *is, reloaded)
	}
}

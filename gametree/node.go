// Package gametree presents a two-player normal-form game as a depth-2
// extensive-form game tree compatible with the solvers in
// github.com/timpalpant/go-cfr. Player 0 moves at the root and player 1
// at the middle layer, but every middle node shares a single player-1
// information set, so the simultaneous-move structure of the underlying
// game is preserved.
package gametree

import (
	"fmt"

	"github.com/timpalpant/go-cfr"

	"github.com/gamedyn/fictplay/normalform"
)

// Node implements cfr.GameTreeNode for a one-shot normal-form game.
// Actions not yet taken are encoded as -1.
type Node struct {
	game     *normalform.Game
	p0Action int
	p1Action int
	parent   *Node
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &Node{}

// New returns the root node of the one-shot game tree.
func New(g *normalform.Game) *Node {
	return &Node{game: g, p0Action: -1, p1Action: -1}
}

// Type implements cfr.GameTreeNode. The tree has no chance nodes.
func (n *Node) Type() cfr.NodeType {
	if n.p1Action >= 0 {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (n *Node) Player() int {
	if n.p0Action < 0 {
		return 0
	}

	return 1
}

// NumChildren implements cfr.GameTreeNode.
func (n *Node) NumChildren() int {
	if n.Type() == cfr.TerminalNodeType {
		return 0
	}

	return n.game.Player(n.Player()).NumActions()
}

// GetChild implements cfr.GameTreeNode.
func (n *Node) GetChild(i int) cfr.GameTreeNode {
	child := *n
	child.parent = n
	if n.p0Action < 0 {
		child.p0Action = i
	} else {
		child.p1Action = i
	}

	return &child
}

// Parent implements cfr.GameTreeNode.
func (n *Node) Parent() cfr.GameTreeNode {
	return n.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (n *Node) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (n *Node) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample the child of a non-chance node")
}

// InfoSet implements cfr.GameTreeNode. Each player acts exactly once
// and observes nothing before acting, so the acting player's index is
// the entire information set.
func (n *Node) InfoSet(player int) cfr.InfoSet {
	return &infoSet{player: uint8(player)}
}

// Utility implements cfr.GameTreeNode.
func (n *Node) Utility(player int) float64 {
	if n.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	actions := [2]int{n.p0Action, n.p1Action}
	return n.game.Player(player).Payoff(actions[player], actions[1-player])
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	switch n.Type() {
	case cfr.TerminalNodeType:
		return fmt.Sprintf("Terminal node: player 0 played %d, player 1 played %d", n.p0Action, n.p1Action)
	default:
		return fmt.Sprintf("Player %d's turn to choose among %d actions", n.Player(), n.NumChildren())
	}
}

// Close implements cfr.GameTreeNode.
func (n *Node) Close() {}

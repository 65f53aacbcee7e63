// Solves a built-in two-player game with vanilla CFR over the one-shot
// game tree, as an equilibrium cross-check on the fictitious play
// dynamics.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/gamedyn/fictplay/gametree"
	"github.com/gamedyn/fictplay/normalform"
)

var matchingPennies = [][][]float64{
	{{1, -1}, {-1, 1}},
	{{-1, 1}, {1, -1}},
}

func main() {
	iter := flag.Int("iter", 1000, "Number of CFR iterations")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	rand.Seed(*seed)
	go http.ListenAndServe("localhost:4123", nil)

	g, err := normalform.FromBimatrix(matchingPennies)
	if err != nil {
		glog.Fatal(err)
	}

	root := gametree.New(g)
	total := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("Game tree has %d nodes", total)

	logEvery := *iter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	vanillaCFR := cfr.New(cfr.NewPolicyTable(cfr.DiscountParams{}))
	expectedValue := vanillaCFR.Run(root)
	for i := 2; i <= *iter; i++ {
		expectedValue = vanillaCFR.Run(root)
		if i%logEvery == 0 {
			glog.Infof("After %d iterations, expected value: %v", i, expectedValue)
		}
	}

	glog.Infof("Expected value is: %v", expectedValue)
}

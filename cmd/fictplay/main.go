// Runs fictitious play on a built-in two-player game and logs the
// belief trajectory.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/gamedyn/fictplay"
)

var matchingPennies = [][][]float64{
	{{1, -1}, {-1, 1}},
	{{-1, 1}, {1, -1}},
}

var rockPaperScissors = [][]float64{
	{0, -1, 1},
	{1, 0, -1},
	{-1, 1, 0},
}

func main() {
	game := flag.String("game", "matching_pennies", "Game to simulate: matching_pennies or rps")
	tsLength := flag.Int("ts_length", 1000, "Number of rounds to simulate")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	rand.Seed(*seed)

	fp, err := newEngine(*game)
	if err != nil {
		glog.Fatal(err)
	}

	fp.Seed(uint64(*seed))
	sim, err := fp.SimulateIter(*tsLength, nil)
	if err != nil {
		glog.Fatal(err)
	}

	logEvery := *tsLength / 10
	if logEvery == 0 {
		logEvery = 1
	}

	t := 0
	var last [2][]float64
	for beliefs, ok := sim.Next(); ok; beliefs, ok = sim.Next() {
		if t%logEvery == 0 {
			glog.Infof("Round %d: player 0 believes %v, player 1 believes %v",
				t, beliefs[0], beliefs[1])
		}

		last = beliefs
		t++
	}

	glog.Infof("Final beliefs after %d rounds: player 0 %v, player 1 %v",
		t, last[0], last[1])
}

func newEngine(game string) (*fictplay.FictitiousPlay, error) {
	switch game {
	case "matching_pennies":
		return fictplay.NewFromBimatrix(matchingPennies)
	case "rps":
		return fictplay.NewFromMatrix(rockPaperScissors)
	default:
		return nil, errors.Errorf("unknown game %q", game)
	}
}

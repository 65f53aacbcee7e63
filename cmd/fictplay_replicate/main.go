// Estimates the long-run distribution of beliefs by replicating many
// independent fictitious play runs from random initial beliefs and
// recording each run's terminal belief pair.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gamedyn/fictplay"
)

var matchingPennies = [][][]float64{
	{{1, -1}, {-1, 1}},
	{{-1, 1}, {1, -1}},
}

func main() {
	T := flag.Int("T", 100, "Number of rounds per run")
	numReps := flag.Int("num_reps", 1000, "Number of independent runs")
	seed := flag.Int64("seed", 123, "Random seed")
	flag.Parse()

	rand.Seed(*seed)

	fp, err := fictplay.NewFromBimatrix(matchingPennies)
	if err != nil {
		glog.Fatal(err)
	}

	fp.Seed(uint64(*seed))
	out, err := fp.Replicate(*T, *numReps, nil)
	if err != nil {
		glog.Fatal(err)
	}

	for i, beliefs := range out {
		_, cols := beliefs.Dims()
		means := make([]float64, cols)
		for j := 0; j < cols; j++ {
			means[j] = stat.Mean(mat.Col(nil, j, beliefs), nil)
		}

		glog.Infof("Player %d mean terminal belief over %d runs: %v", i, *numReps, means)
	}
}

// Package trainer drives a network through forward/backward passes and
// owns everything the engine deliberately does not: weight updates,
// accumulator resets, and the link pruning policy.
package trainer

import (
	"fmt"
	"math"

	"playnet_lib/nn"
)

type Trainer struct {
	Net                *nn.Network
	LearningRate       float64
	RegularizationRate float64
}

func New(net *nn.Network, learningRate, regularizationRate float64) *Trainer {
	return &Trainer{
		Net:                net,
		LearningRate:       learningRate,
		RegularizationRate: regularizationRate,
	}
}

// Step runs one training example through the network, forward then
// backward, and returns the example's loss. Gradients accumulate until
// the next UpdateWeights.
func (t *Trainer) Step(x []float64, target float64, loss nn.Loss) (float64, error) {
	output, err := t.Net.Forward(x)
	if err != nil {
		return 0, err
	}
	t.Net.Backward(target, loss)
	return loss.Value(output, target), nil
}

// UpdateWeights applies the averaged accumulated gradients to every
// bias and live link weight, then zeroes the accumulators. This is the
// only place accumulators are ever reset; dead links keep their weight
// but still drop any gradient accumulated before they were pruned. An
// L1-regularized weight that the penalty pushes through zero is
// clamped to 0 and its link marked dead.
func (t *Trainer) UpdateWeights() {
	for depth := 1; depth < len(t.Net.Layers); depth++ {
		for _, id := range t.Net.Layers[depth] {
			nd := &t.Net.Nodes[id]
			if nd.NumAccumulatedDers > 0 {
				nd.Bias -= t.LearningRate * nd.AccInputDer / float64(nd.NumAccumulatedDers)
				nd.AccInputDer = 0
				nd.NumAccumulatedDers = 0
			}

			for _, li := range nd.InLinks {
				l := &t.Net.Links[li]
				if !l.IsDead {
					if l.NumAccumulatedDers > 0 {
						l.Weight -= t.LearningRate * l.AccErrorDer / float64(l.NumAccumulatedDers)
					}
					if l.Regularization != nil {
						next := l.Weight - t.LearningRate*t.RegularizationRate*l.Regularization.Derivative(l.Weight)
						if _, isL1 := l.Regularization.(nn.L1); isL1 && l.Weight*next < 0 {
							l.Weight = 0
							l.IsDead = true
						} else {
							l.Weight = next
						}
					}
				}
				l.AccErrorDer = 0
				l.NumAccumulatedDers = 0
			}
		}
	}
}

// PruneBelow marks every live link whose weight magnitude falls below
// min as dead and reports how many were pruned.
func (t *Trainer) PruneBelow(min float64) int {
	pruned := 0
	for i := range t.Net.Links {
		l := &t.Net.Links[i]
		if !l.IsDead && math.Abs(l.Weight) < min {
			l.IsDead = true
			pruned++
		}
	}
	return pruned
}

// Revive clears every dead flag.
func (t *Trainer) Revive() {
	for i := range t.Net.Links {
		t.Net.Links[i].IsDead = false
	}
}

// Loss returns the mean loss over a dataset using forward passes only;
// no gradient state is touched.
func (t *Trainer) Loss(xs [][]float64, ys []float64, loss nn.Loss) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("dataset size mismatch: %d inputs, %d targets", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("empty dataset")
	}
	total := 0.0
	for i, x := range xs {
		output, err := t.Net.Forward(x)
		if err != nil {
			return 0, err
		}
		total += loss.Value(output, ys[i])
	}
	return total / float64(len(xs)), nil
}

package nn

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const defaultBias = 0.1

// Network owns every Node and Link for the lifetime of the graph.
// Layers hold node indices in evaluation order; layer 0 is the input
// layer and the last layer holds the single output node. The builder
// creates the whole graph once and nothing restructures it afterwards;
// only numeric fields mutate.
type Network struct {
	Layers [][]int
	Nodes  []Node
	Links  []Link
}

// NewNetwork builds a fully connected layered graph. shape[0] is the
// input count and must match len(inputIDs); later entries are hidden
// and output layer sizes. Hidden and output nodes get fresh integer
// ids counted across the whole network, input ids are caller-supplied.
// Every node in layer k (k≥1) gets exactly one in-link from every node
// in layer k−1. initZero forces all biases and weights to 0 instead of
// the 0.1 default and uniform [-0.5, 0.5) draw; src seeds the weight
// draws, nil falls back to the shared global source. Malformed shapes
// are the caller's problem (see utils.ValidateShape).
func NewNetwork(shape []int, activation, outputActivation Activation, reg Regularization, inputIDs []string, initZero bool, src rand.Source) *Network {
	weight := distuv.Uniform{Min: -0.5, Max: 0.5, Src: src}

	net := &Network{Layers: make([][]int, 0, len(shape))}
	nextID := 1
	for depth, size := range shape {
		layer := make([]int, 0, size)
		for i := 0; i < size; i++ {
			nd := Node{Bias: defaultBias, Activation: activation}
			if depth == len(shape)-1 {
				nd.Activation = outputActivation
			}
			if initZero {
				nd.Bias = 0
			}
			if depth == 0 {
				nd.ID = inputIDs[i]
			} else {
				nd.ID = strconv.Itoa(nextID)
				nextID++
			}
			idx := len(net.Nodes)
			net.Nodes = append(net.Nodes, nd)
			layer = append(layer, idx)

			if depth > 0 {
				for _, src := range net.Layers[depth-1] {
					w := weight.Rand()
					if initZero {
						w = 0
					}
					li := len(net.Links)
					net.Links = append(net.Links, Link{
						ID:             net.Nodes[src].ID + "-" + nd.ID,
						Source:         src,
						Dest:           idx,
						Weight:         w,
						Regularization: reg,
					})
					net.Nodes[src].OutLinks = append(net.Nodes[src].OutLinks, li)
					net.Nodes[idx].InLinks = append(net.Nodes[idx].InLinks, li)
				}
			}
		}
		net.Layers = append(net.Layers, layer)
	}
	return net
}

// OutputNode returns the index of the single output node.
func (net *Network) OutputNode() int {
	last := net.Layers[len(net.Layers)-1]
	return last[0]
}

// Forward runs one evaluation pass and returns the output node's
// value. Input node outputs are assigned straight from the vector
// (input nodes have no in-links or bias contribution), then every
// later layer updates in order, each reading only the layer before it.
// The length check is the engine's only checked error and nothing
// mutates when it fails.
func (net *Network) Forward(inputs []float64) (float64, error) {
	inputLayer := net.Layers[0]
	if len(inputs) != len(inputLayer) {
		return 0, fmt.Errorf("input length mismatch: got %d values for %d input nodes", len(inputs), len(inputLayer))
	}
	for i, id := range inputLayer {
		net.Nodes[id].Output = inputs[i]
	}
	for _, layer := range net.Layers[1:] {
		for _, id := range layer {
			net.updateOutput(id)
		}
	}
	return net.Nodes[net.OutputNode()].Output, nil
}

// Backward accumulates error derivatives for the example Forward just
// evaluated, walking layers last to first and never touching the input
// layer. Dead links are skipped when link gradients accumulate but a
// preceding Forward still summed them; that asymmetry is deliberate
// observed behavior. Accumulators are only ever added to here, the
// trainer resets them between weight updates.
func (net *Network) Backward(target float64, loss Loss) {
	out := &net.Nodes[net.OutputNode()]
	out.OutputDer = loss.Derivative(out.Output, target)

	for depth := len(net.Layers) - 1; depth >= 1; depth-- {
		layer := net.Layers[depth]

		for _, id := range layer {
			nd := &net.Nodes[id]
			nd.InputDer = nd.OutputDer * nd.Activation.Derivative(nd.TotalInput)
			nd.AccInputDer += nd.InputDer
			nd.NumAccumulatedDers++
		}

		for _, id := range layer {
			nd := &net.Nodes[id]
			for _, li := range nd.InLinks {
				l := &net.Links[li]
				if l.IsDead {
					continue
				}
				l.ErrorDer = nd.InputDer * net.Nodes[l.Source].Output
				l.AccErrorDer += l.ErrorDer
				l.NumAccumulatedDers++
			}
		}

		if depth == 1 {
			break
		}
		// Every InputDer in this layer is final before any source node
		// reads it back.
		for _, id := range net.Layers[depth-1] {
			nd := &net.Nodes[id]
			nd.OutputDer = 0
			for _, li := range nd.OutLinks {
				l := &net.Links[li]
				nd.OutputDer += l.Weight * net.Nodes[l.Dest].InputDer
			}
		}
	}
}

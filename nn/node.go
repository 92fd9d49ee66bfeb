package nn

// Node is one computational unit in the graph. Its links are stored as
// indices into the owning Network's link arena, never as pointers, so
// the shared-link graph carries no ownership cycles.
type Node struct {
	ID       string
	InLinks  []int
	OutLinks []int
	Bias     float64

	// Valid after a forward pass.
	TotalInput float64
	Output     float64

	// Valid after a backward pass.
	OutputDer float64
	InputDer  float64

	// Running sums across backward passes. The engine only ever adds
	// to these; resetting them is the trainer's job.
	AccInputDer        float64
	NumAccumulatedDers int

	// Fixed at construction.
	Activation Activation
}

// Link is a weighted directed connection between two nodes in adjacent
// layers, owned by the Network and referenced by index from both
// endpoints.
type Link struct {
	ID     string
	Source int
	Dest   int
	Weight float64

	// IsDead is pruning state owned by the trainer. A dead link still
	// feeds the forward weighted sum; it is only skipped when
	// gradients accumulate.
	IsDead bool

	ErrorDer           float64
	AccErrorDer        float64
	NumAccumulatedDers int

	// Nil when the network was built without regularization.
	Regularization Regularization
}

// updateOutput recomputes a node's cached totals from its in-links and
// returns the new output. Cost is linear in fan-in; nothing guards
// against NaN or Inf, extreme values propagate as-is.
func (net *Network) updateOutput(id int) float64 {
	nd := &net.Nodes[id]
	total := nd.Bias
	for _, li := range nd.InLinks {
		l := &net.Links[li]
		total += l.Weight * net.Nodes[l.Source].Output
	}
	nd.TotalInput = total
	nd.Output = nd.Activation.Value(total)
	return nd.Output
}

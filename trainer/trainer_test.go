package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playnet_lib/nn"
)

func linearNet(shape []int, ids []string, reg nn.Regularization) *nn.Network {
	return nn.NewNetwork(shape, nn.Linear{}, nn.Linear{}, reg, ids, true, nil)
}

func TestStepReturnsLossAndAccumulates(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nil)
	net.Links[0].Weight = 2
	net.Nodes[net.OutputNode()].Bias = 1

	tr := New(net, 0.1, 0)
	loss, err := tr.Step([]float64{5}, 0, nn.Square{})
	require.NoError(t, err)
	assert.Equal(t, 60.5, loss)
	assert.Equal(t, 55.0, net.Links[0].AccErrorDer)
	assert.Equal(t, 11.0, net.Nodes[net.OutputNode()].AccInputDer)
}

func TestStepRejectsBadInput(t *testing.T) {
	tr := New(linearNet([]int{2, 1}, []string{"x1", "x2"}, nil), 0.1, 0)
	_, err := tr.Step([]float64{1}, 0, nn.Square{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input length mismatch")
}

func TestUpdateWeightsAppliesAveragedGradientAndResets(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nil)
	outIdx := net.OutputNode()
	net.Links[0].Weight = 2
	net.Nodes[outIdx].Bias = 1

	tr := New(net, 0.1, 0)
	_, err := tr.Step([]float64{5}, 0, nn.Square{})
	require.NoError(t, err)

	tr.UpdateWeights()

	assert.InDelta(t, 1-0.1*11, net.Nodes[outIdx].Bias, 1e-12)
	assert.InDelta(t, 2-0.1*55, net.Links[0].Weight, 1e-12)

	// The mandatory external reset: all four accumulators back to zero.
	assert.Zero(t, net.Nodes[outIdx].AccInputDer)
	assert.Zero(t, net.Nodes[outIdx].NumAccumulatedDers)
	assert.Zero(t, net.Links[0].AccErrorDer)
	assert.Zero(t, net.Links[0].NumAccumulatedDers)
}

func TestUpdateWeightsAveragesOverBatch(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nil)
	net.Links[0].Weight = 2

	tr := New(net, 0.1, 0)
	for i := 0; i < 4; i++ {
		_, err := tr.Step([]float64{5}, 0, nn.Square{})
		require.NoError(t, err)
	}
	require.Equal(t, 4, net.Links[0].NumAccumulatedDers)

	tr.UpdateWeights()

	// Four identical examples average to a single example's gradient.
	assert.InDelta(t, 2-0.1*50, net.Links[0].Weight, 1e-12)
}

func TestUpdateWeightsSkipsDeadLinks(t *testing.T) {
	net := linearNet([]int{2, 1}, []string{"x1", "x2"}, nil)
	net.Links[0].Weight = 3
	net.Links[0].IsDead = true
	net.Links[1].Weight = 2

	tr := New(net, 0.1, 0)
	_, err := tr.Step([]float64{1, 1}, 0, nn.Square{})
	require.NoError(t, err)

	tr.UpdateWeights()

	assert.Equal(t, 3.0, net.Links[0].Weight, "dead link weight untouched")
	assert.InDelta(t, 2-0.1*5, net.Links[1].Weight, 1e-12)
}

func TestUpdateWeightsAppliesL2Penalty(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nn.L2{})
	net.Links[0].Weight = 1

	tr := New(net, 0.1, 0.1)
	tr.UpdateWeights()

	assert.InDelta(t, 1-0.1*0.1*1, net.Links[0].Weight, 1e-12)
	assert.False(t, net.Links[0].IsDead)
}

func TestUpdateWeightsL1ZeroCrossingKillsLink(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nn.L1{})
	net.Links[0].Weight = 0.01

	tr := New(net, 0.1, 1)
	tr.UpdateWeights()

	assert.Zero(t, net.Links[0].Weight)
	assert.True(t, net.Links[0].IsDead, "L1 pushing a weight through zero prunes the link")
}

func TestUpdateWeightsClearsPrunedLinkAccumulators(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nil)
	net.Links[0].Weight = 2

	tr := New(net, 0.1, 0)
	_, err := tr.Step([]float64{5}, 0, nn.Square{})
	require.NoError(t, err)
	require.Equal(t, 50.0, net.Links[0].AccErrorDer)

	// Pruned mid-batch: the stale gradient must not survive the update.
	net.Links[0].IsDead = true
	tr.UpdateWeights()

	assert.Equal(t, 2.0, net.Links[0].Weight, "dead link weight untouched")
	assert.Zero(t, net.Links[0].AccErrorDer)
	assert.Zero(t, net.Links[0].NumAccumulatedDers)

	// After revival only fresh gradients drive the next update. The
	// bias update above moved the output to 9, so one new example
	// contributes exactly 45.
	tr.Revive()
	_, err = tr.Step([]float64{5}, 0, nn.Square{})
	require.NoError(t, err)
	require.Equal(t, 1, net.Links[0].NumAccumulatedDers)
	tr.UpdateWeights()
	assert.InDelta(t, 2-0.1*45, net.Links[0].Weight, 1e-12)
}

func TestPruneBelowAndRevive(t *testing.T) {
	net := linearNet([]int{2, 2, 1}, []string{"x1", "x2"}, nil)
	for i := range net.Links {
		net.Links[i].Weight = 1
	}
	net.Links[0].Weight = 0.001
	net.Links[3].Weight = -0.002

	tr := New(net, 0.1, 0)
	assert.Equal(t, 2, tr.PruneBelow(0.01))
	assert.True(t, net.Links[0].IsDead)
	assert.True(t, net.Links[3].IsDead)
	assert.Equal(t, 0, tr.PruneBelow(0.01), "already-dead links are not re-counted")

	tr.Revive()
	for _, l := range net.Links {
		assert.False(t, l.IsDead)
	}
}

func TestLossOverDataset(t *testing.T) {
	tr := New(linearNet([]int{1, 1}, []string{"x1"}, nil), 0.1, 0)

	// Zero-initialized linear net always outputs 0.
	loss, err := tr.Loss([][]float64{{1}, {2}}, []float64{1, -1}, nn.Square{})
	require.NoError(t, err)
	assert.Equal(t, 0.5, loss)

	_, err = tr.Loss([][]float64{{1}}, []float64{1, 2}, nn.Square{})
	require.Error(t, err)

	_, err = tr.Loss(nil, nil, nn.Square{})
	require.Error(t, err)
}

func TestTrainingConverges(t *testing.T) {
	net := linearNet([]int{1, 1}, []string{"x1"}, nil)
	tr := New(net, 0.1, 0)

	initial, err := tr.Loss([][]float64{{1}}, []float64{2}, nn.Square{})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		_, err := tr.Step([]float64{1}, 2, nn.Square{})
		require.NoError(t, err)
		tr.UpdateWeights()
	}

	final, err := tr.Loss([][]float64{{1}}, []float64{2}, nn.Square{})
	require.NoError(t, err)
	assert.Less(t, final, initial)
	assert.Less(t, final, 1e-6, "a 1-1 linear net fits y=2x")
}

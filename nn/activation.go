package nn

import (
	"fmt"
	"math"
)

// Activation is a differentiable scalar activation function. Every
// implementation is stateless; a node keeps a reference to the one it
// was constructed with.
type Activation interface {
	Value(x float64) float64
	Derivative(x float64) float64
	fmt.Stringer
}

// ActivationLookup maps flag-friendly names to activation functions.
var ActivationLookup = map[string]Activation{
	"tanh":    Tanh{},
	"relu":    ReLU{},
	"sigmoid": Sigmoid{},
	"linear":  Linear{},
}

type Tanh struct{}

// Value pins the saturated ends explicitly so infinite inputs return
// exactly ±1 instead of tripping over an Inf/Inf form.
func (Tanh) Value(x float64) float64 {
	if math.IsInf(x, 1) {
		return 1
	}
	if math.IsInf(x, -1) {
		return -1
	}
	return math.Tanh(x)
}

func (t Tanh) Derivative(x float64) float64 {
	output := t.Value(x)
	return 1 - output*output
}

func (Tanh) String() string {
	return "tanh"
}

type ReLU struct{}

func (ReLU) Value(x float64) float64 {
	return math.Max(0, x)
}

// Derivative at exactly 0 is defined as 0.
func (ReLU) Derivative(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1
}

func (ReLU) String() string {
	return "relu"
}

type Sigmoid struct{}

func (Sigmoid) Value(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func (s Sigmoid) Derivative(x float64) float64 {
	output := s.Value(x)
	return output * (1 - output)
}

func (Sigmoid) String() string {
	return "sigmoid"
}

type Linear struct{}

func (Linear) Value(x float64) float64 {
	return x
}

func (Linear) Derivative(x float64) float64 {
	return 1
}

func (Linear) String() string {
	return "linear"
}

package nn

import (
	"fmt"
	"math"
)

// Regularization penalizes a link weight and supplies the derivative
// the trainer folds into its weight update.
type Regularization interface {
	Value(w float64) float64
	Derivative(w float64) float64
	fmt.Stringer
}

// RegularizationLookup maps flag-friendly names to regularizers.
// "none" resolves to nil, meaning links carry no penalty.
var RegularizationLookup = map[string]Regularization{
	"none": nil,
	"l1":   L1{},
	"l2":   L2{},
}

type L1 struct{}

func (L1) Value(w float64) float64 {
	return math.Abs(w)
}

// Derivative is the sign of w, with sign(0) = 0.
func (L1) Derivative(w float64) float64 {
	switch {
	case w < 0:
		return -1
	case w > 0:
		return 1
	}
	return 0
}

func (L1) String() string {
	return "l1"
}

type L2 struct{}

func (L2) Value(w float64) float64 {
	return 0.5 * w * w
}

func (L2) Derivative(w float64) float64 {
	return w
}

func (L2) String() string {
	return "l2"
}

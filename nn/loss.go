package nn

// Loss scores a single scalar prediction against its target and
// supplies the derivative that seeds the backward pass.
type Loss interface {
	Value(output, target float64) float64
	Derivative(output, target float64) float64
}

// LossLookup maps flag-friendly names to loss functions.
var LossLookup = map[string]Loss{
	"square": Square{},
}

// Square is the half squared error, 0.5·(output−target)².
type Square struct{}

func (Square) Value(output, target float64) float64 {
	d := output - target
	return 0.5 * d * d
}

func (Square) Derivative(output, target float64) float64 {
	return output - target
}

package quadrature

import (
	"fmt"
	"math"
)

// ChebyshevGaussLobatto returns the n nodes and weights of the Chebyshev-Gauss-Lobatto rule
// rescaled from [-1, 1] to [a, b]. The endpoint weights are halved.
func ChebyshevGaussLobatto(a, b float64, n int) ([]float64, Weights, error) {
	if n < 2 {
		return nil, Weights{}, fmt.Errorf("need at least 2 nodes for a lobatto rule, got %d", n)
	}
	if !(b > a) {
		return nil, Weights{}, fmt.Errorf("invalid interval [%v, %v]", a, b)
	}

	m := float64(n - 1)
	half := (b - a) / 2
	mid := (b + a) / 2

	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		x := -math.Cos(math.Pi * float64(i) / m)
		w := math.Pi / m * math.Sqrt(math.Abs(1-x*x))
		if i == 0 || i == n-1 {
			w /= 2
		}
		nodes[i] = x*half + mid
		weights[i] = w * half
	}
	return nodes, Weights{w: weights}, nil
}

package prover

import (
	"github.com/consensys/gnark/frontend"
)

// CubicCircuit proves knowledge of x such that x^3 + x + 5 == y.
type CubicCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *CubicCircuit) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(api.Add(x3, c.X, 5), c.Y)
	return nil
}

// create-fixtures seeds ./fixtures with one fixture per proof system.
// Plonk and Groth16 payloads come from real proofs of the demo circuit;
// the STARK payload uses placeholder bytes since no STARK backend is wired.
package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/base-org/proof-fixture-service/fixture"
	"github.com/base-org/proof-fixture-service/prover"
)

func main() {
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.LevelInfo, true)))

	// x = 3 satisfies x^3 + x + 5 == 35.
	assignment := &prover.CubicCircuit{X: 3, Y: 35}

	proof, vk, err := prover.ProvePlonk(assignment)
	if err != nil {
		log.Crit("Plonk proving failed", "error", err)
	}
	if err := fixture.CreateProofFixture(proof, vk, fixture.Plonk); err != nil {
		log.Crit("Writing Plonk fixture failed", "error", err)
	}

	proof, vk, err = prover.ProveGroth16(assignment)
	if err != nil {
		log.Crit("Groth16 proving failed", "error", err)
	}
	if err := fixture.CreateProofFixture(proof, vk, fixture.Groth16); err != nil {
		log.Crit("Writing Groth16 fixture failed", "error", err)
	}

	starkProof := &fixture.ProofWithPublicValues{
		Proof:        []byte{1, 2, 3, 4, 5, 6, 7, 8},
		PublicValues: []byte{42, 100, 200},
	}
	starkVk := &fixture.VerifyingKey{VK: []byte{9, 10, 11, 12, 13, 14, 15, 16}}
	if err := fixture.CreateProofFixture(starkProof, starkVk, fixture.STARK); err != nil {
		log.Crit("Writing STARK fixture failed", "error", err)
	}

	log.Info("All fixtures created", "dir", fixture.FixturesDir)
}

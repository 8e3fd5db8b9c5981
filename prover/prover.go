// Package prover produces example proofs for seeding fixtures. It stands in
// for the real proving pipeline that normally supplies proof and verifying
// key bytes; the fixture writer itself never interprets what it is given.
package prover

import (
	"bytes"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/ethereum/go-ethereum/log"

	"github.com/base-org/proof-fixture-service/fixture"
)

// ProvePlonk compiles the cubic circuit, runs an unsafe KZG setup and proves
// the assignment with PLONK, returning serialized fixture inputs.
func ProvePlonk(assignment frontend.Circuit) (*fixture.ProofWithPublicValues, *fixture.VerifyingKey, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &CubicCircuit{})
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compile circuit: %w", err)
	}

	// Test-only SRS. A production setup would load a ceremony transcript.
	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build SRS: %w", err)
	}
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, nil, fmt.Errorf("plonk setup failed: %w", err)
	}

	w, publicWitness, err := witnesses(assignment)
	if err != nil {
		return nil, nil, err
	}

	log.Info("Proving", "system", fixture.Plonk)
	proof, err := plonk.Prove(ccs, pk, w)
	if err != nil {
		return nil, nil, fmt.Errorf("plonk prove failed: %w", err)
	}
	if err = plonk.Verify(proof, vk, publicWitness); err != nil {
		return nil, nil, fmt.Errorf("plonk proof did not verify: %w", err)
	}

	return serialize(proof, vk, publicWitness)
}

// ProveGroth16 is the Groth16 counterpart of ProvePlonk.
func ProveGroth16(assignment frontend.Circuit) (*fixture.ProofWithPublicValues, *fixture.VerifyingKey, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &CubicCircuit{})
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compile circuit: %w", err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("groth16 setup failed: %w", err)
	}

	w, publicWitness, err := witnesses(assignment)
	if err != nil {
		return nil, nil, err
	}

	log.Info("Proving", "system", fixture.Groth16)
	proof, err := groth16.Prove(ccs, pk, w)
	if err != nil {
		return nil, nil, fmt.Errorf("groth16 prove failed: %w", err)
	}
	if err = groth16.Verify(proof, vk, publicWitness); err != nil {
		return nil, nil, fmt.Errorf("groth16 proof did not verify: %w", err)
	}

	return serialize(proof, vk, publicWitness)
}

func witnesses(assignment frontend.Circuit) (witness.Witness, witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build witness: %w", err)
	}
	publicWitness, err := w.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to extract public witness: %w", err)
	}
	return w, publicWitness, nil
}

func serialize(proof io.WriterTo, vk io.WriterTo, publicWitness witness.Witness) (*fixture.ProofWithPublicValues, *fixture.VerifyingKey, error) {
	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, nil, fmt.Errorf("unable to serialize proof: %w", err)
	}

	publicValues, err := publicWitness.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to serialize public witness: %w", err)
	}

	var vkBuf bytes.Buffer
	if _, err := vk.WriteTo(&vkBuf); err != nil {
		return nil, nil, fmt.Errorf("unable to serialize verifying key: %w", err)
	}

	return &fixture.ProofWithPublicValues{
		Proof:        proofBuf.Bytes(),
		PublicValues: publicValues,
	}, &fixture.VerifyingKey{VK: vkBuf.Bytes()}, nil
}

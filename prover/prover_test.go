package prover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/base-org/proof-fixture-service/fixture"
	"github.com/base-org/proof-fixture-service/fixture/storage"
)

func TestProveGroth16(t *testing.T) {
	proof, vk, err := ProveGroth16(&CubicCircuit{X: 3, Y: 35})
	require.NoError(t, err)
	require.NotEmpty(t, proof.Proof)
	require.NotEmpty(t, proof.PublicValues)
	require.NotEmpty(t, vk.VK)

	store := storage.NewFileStorage(t.TempDir())
	require.NoError(t, fixture.WriteProofFixture(store, proof, vk, fixture.Groth16))

	record, err := fixture.ReadProofFixture(store, fixture.Groth16)
	require.NoError(t, err)
	require.Equal(t, fixture.Bytes(proof.Proof), record.Proof)
	require.Equal(t, fixture.Bytes(vk.VK), record.VK)
}

func TestProvePlonk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PLONK setup in short mode")
	}
	proof, vk, err := ProvePlonk(&CubicCircuit{X: 3, Y: 35})
	require.NoError(t, err)
	require.NotEmpty(t, proof.Proof)
	require.NotEmpty(t, proof.PublicValues)
	require.NotEmpty(t, vk.VK)
}

func TestProveGroth16InvalidAssignment(t *testing.T) {
	_, _, err := ProveGroth16(&CubicCircuit{X: 3, Y: 36})
	require.Error(t, err)
}

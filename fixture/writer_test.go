package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/base-org/proof-fixture-service/fixture/storage"
)

var (
	testProof = &ProofWithPublicValues{
		Proof:        []byte{1, 2, 3, 4},
		PublicValues: []byte{5, 6, 7, 8},
	}
	testVk = &VerifyingKey{VK: []byte{9, 10, 11, 12}}
)

func TestWriteProofFixture(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStorage(dir)

	require.NoError(t, WriteProofFixture(store, testProof, testVk, Plonk))

	data, err := os.ReadFile(filepath.Join(dir, "proof_fixture_plonk.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"proof":[1,2,3,4],"public_values":[5,6,7,8],"vk":[9,10,11,12],"system":"Plonk"}`, string(data))
}

func TestWriteProofFixtureStarkFilename(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStorage(dir)

	require.NoError(t, WriteProofFixture(store, testProof, testVk, STARK))

	data, err := os.ReadFile(filepath.Join(dir, "proof_fixture_STARK.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"proof":[1,2,3,4],"public_values":[5,6,7,8],"vk":[9,10,11,12],"system":"STARK"}`, string(data))
}

func TestWriteCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "fixtures")
	store := storage.NewFileStorage(dir)

	require.NoError(t, WriteProofFixture(store, testProof, testVk, Groth16))
	require.FileExists(t, filepath.Join(dir, "proof_fixture_groth16.json"))

	// The directory now exists; writing again must behave identically.
	require.NoError(t, WriteProofFixture(store, testProof, testVk, Groth16))
}

func TestWriteOverwritesPreviousFixture(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStorage(dir)

	require.NoError(t, WriteProofFixture(store, testProof, testVk, Plonk))
	second := &ProofWithPublicValues{Proof: []byte{9}, PublicValues: []byte{8}}
	require.NoError(t, WriteProofFixture(store, second, &VerifyingKey{VK: []byte{7}}, Plonk))

	record, err := ReadProofFixture(store, Plonk)
	require.NoError(t, err)
	require.Equal(t, Bytes{9}, record.Proof)
	require.Equal(t, Bytes{8}, record.PublicValues)
	require.Equal(t, Bytes{7}, record.VK)
}

func TestWriteDistinctSystemsDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStorage(dir)

	for _, system := range []ProofSystem{Plonk, Groth16, STARK} {
		require.NoError(t, WriteProofFixture(store, testProof, testVk, system))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestWriteFailsOnDirectoryCollision(t *testing.T) {
	parent := t.TempDir()
	collision := filepath.Join(parent, "fixtures")
	require.NoError(t, os.WriteFile(collision, []byte("not a directory"), 0o644))

	store := storage.NewFileStorage(collision)
	require.Error(t, WriteProofFixture(store, testProof, testVk, Plonk))
}

func TestWriteRejectsUnknownSystem(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	require.Error(t, WriteProofFixture(store, testProof, testVk, ProofSystem("Halo2")))
}

func TestReadProofFixtureRoundTrip(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())

	empty := &ProofWithPublicValues{Proof: []byte{}, PublicValues: []byte{}}
	require.NoError(t, WriteProofFixture(store, empty, &VerifyingKey{VK: []byte{}}, STARK))

	record, err := ReadProofFixture(store, STARK)
	require.NoError(t, err)
	require.Empty(t, record.Proof)
	require.Empty(t, record.PublicValues)
	require.Empty(t, record.VK)
	require.Equal(t, STARK, record.System)
}

func TestReadProofFixtureMissing(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	_, err := ReadProofFixture(store, Plonk)
	require.Error(t, err)
}

func TestCreateProofFixture(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	require.NoError(t, CreateProofFixture(testProof, testVk, Plonk))
	require.FileExists(t, filepath.Join(FixturesDir, "proof_fixture_plonk.json"))
}

package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/base-org/proof-fixture-service/fixture/storage"
	"github.com/ethereum/go-ethereum/log"
)

// FixturesDir is the default output directory, relative to the working
// directory, matching the layout downstream test suites load from.
const FixturesDir = "fixtures"

// CreateProofFixture writes a proof fixture for the given system under
// ./fixtures, creating the directory if needed and silently replacing any
// previous fixture for the same system. The proof, public value and
// verifying key bytes are written through as-is; nothing is validated.
func CreateProofFixture(proof *ProofWithPublicValues, vk *VerifyingKey, system ProofSystem) error {
	if err := WriteProofFixture(storage.NewFileStorage(FixturesDir), proof, vk, system); err != nil {
		return err
	}
	filename, _ := system.Filename()
	log.Info("Proof fixture created", "path", filepath.Join(FixturesDir, filename))
	return nil
}

// WriteProofFixture serializes a fixture record through the given storage
// backend. Failures to serialize or persist propagate to the caller; there
// is no retry and no temp-file-and-rename, a failed write may leave a
// partial file behind.
func WriteProofFixture(store storage.Storage, proof *ProofWithPublicValues, vk *VerifyingKey, system ProofSystem) error {
	filename, err := system.Filename()
	if err != nil {
		return err
	}

	record := NewProofFixture(proof, vk, system)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize fixture: %w", err)
	}

	w, err := store.Writer(filename)
	if err != nil {
		return fmt.Errorf("unable to open fixture %s for writing: %w", filename, err)
	}
	if _, err = w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("unable to write fixture %s: %w", filename, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("unable to write fixture %s: %w", filename, err)
	}
	return nil
}

// ReadProofFixture loads a previously written fixture for the given system
// back from storage.
func ReadProofFixture(store storage.Storage, system ProofSystem) (*ProofFixture, error) {
	filename, err := system.Filename()
	if err != nil {
		return nil, err
	}

	r, err := store.Reader(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open fixture %s: %w", filename, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read fixture %s: %w", filename, err)
	}

	var record ProofFixture
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unable to parse fixture %s: %w", filename, err)
	}
	return &record, nil
}

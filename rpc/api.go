package api

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"

	"github.com/base-org/proof-fixture-service/fixture"
	"github.com/base-org/proof-fixture-service/fixture/storage"
)

// Fixtures exposes fixture creation and retrieval over the `fixture_`
// RPC namespace, backed by whichever Storage the service was started with.
type Fixtures struct {
	store storage.Storage
}

func NewFixtures(store storage.Storage) *Fixtures {
	return &Fixtures{
		store: store,
	}
}

// CreateFixture writes a fixture for the given proof system and returns the
// filename written. Proof, public value and verifying key bytes arrive
// hex-encoded and are stored as-is.
func (f *Fixtures) CreateFixture(proof, publicValues, vk hexutil.Bytes, system string) (string, error) {
	log.Info("Writing fixture for fixture_createFixture call", "system", system, "proofBytes", len(proof), "vkBytes", len(vk))
	parsed, err := fixture.ParseProofSystem(system)
	if err != nil {
		return "", err
	}

	p := &fixture.ProofWithPublicValues{
		Proof:        proof,
		PublicValues: publicValues,
	}
	key := &fixture.VerifyingKey{VK: vk}
	if err := fixture.WriteProofFixture(f.store, p, key, parsed); err != nil {
		return "", err
	}

	return parsed.Filename()
}

// GetFixture loads a previously written fixture for the given proof system.
func (f *Fixtures) GetFixture(system string) (*fixture.ProofFixture, error) {
	log.Info("Loading fixture for fixture_getFixture call", "system", system)
	parsed, err := fixture.ParseProofSystem(system)
	if err != nil {
		return nil, err
	}
	return fixture.ReadProofFixture(f.store, parsed)
}

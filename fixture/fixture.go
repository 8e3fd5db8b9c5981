// Package fixture serializes zero-knowledge proof artifacts to JSON fixture
// files consumed by downstream verification tests. Proof, public-value and
// verifying-key bytes are treated as opaque and pass through unchanged.
package fixture

import (
	"encoding/json"
	"fmt"
)

// ProofSystem identifies the proving scheme a fixture was produced with.
// The set is closed; anything outside it is rejected rather than defaulted.
type ProofSystem string

const (
	Plonk   ProofSystem = "Plonk"
	Groth16 ProofSystem = "Groth16"
	STARK   ProofSystem = "STARK"
)

// ParseProofSystem maps a tag string to its ProofSystem.
func ParseProofSystem(s string) (ProofSystem, error) {
	switch ProofSystem(s) {
	case Plonk:
		return Plonk, nil
	case Groth16:
		return Groth16, nil
	case STARK:
		return STARK, nil
	}
	return "", fmt.Errorf("unsupported proof system %q", s)
}

// Filename returns the fixture filename for the proof system. The STARK
// filename keeps its uppercase tag while the other two are lowercased;
// downstream tooling matches these names literally.
func (s ProofSystem) Filename() (string, error) {
	switch s {
	case Plonk:
		return "proof_fixture_plonk.json", nil
	case Groth16:
		return "proof_fixture_groth16.json", nil
	case STARK:
		return "proof_fixture_STARK.json", nil
	}
	return "", fmt.Errorf("unsupported proof system %q", string(s))
}

func (s ProofSystem) MarshalJSON() ([]byte, error) {
	if _, err := ParseProofSystem(string(s)); err != nil {
		return nil, err
	}
	return json.Marshal(string(s))
}

func (s *ProofSystem) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("failed to parse proof system tag: %w", err)
	}
	parsed, err := ParseProofSystem(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Bytes is a byte slice that serializes as a JSON array of uint8 values
// instead of the base64 string encoding/json would produce. Fixture
// consumers parse numeric arrays, so this is part of the wire contract.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}
	return json.Marshal(ints)
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	var ints []uint16
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("failed to parse byte array: %w", err)
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v > 0xff {
			return fmt.Errorf("byte array element %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// ProofWithPublicValues carries a serialized proof and the public values it
// commits to, as produced by an external prover.
type ProofWithPublicValues struct {
	Proof        []byte
	PublicValues []byte
}

// VerifyingKey carries the serialized verifying key matching a proof.
type VerifyingKey struct {
	VK []byte
}

// ProofFixture is the on-disk record. Field order matches the serialized
// layout consumers expect.
type ProofFixture struct {
	Proof        Bytes       `json:"proof"`
	PublicValues Bytes       `json:"public_values"`
	VK           Bytes       `json:"vk"`
	System       ProofSystem `json:"system"`
}

// NewProofFixture aggregates proof, verifying key and system tag into a
// fixture record. Byte contents are copied through without transformation.
func NewProofFixture(proof *ProofWithPublicValues, vk *VerifyingKey, system ProofSystem) *ProofFixture {
	return &ProofFixture{
		Proof:        Bytes(proof.Proof),
		PublicValues: Bytes(proof.PublicValues),
		VK:           Bytes(vk.VK),
		System:       system,
	}
}

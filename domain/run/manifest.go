// Package run records the provenance of generated packet batches so the
// regression harness can label stored reference spectra and verify that
// a replay used the same seed material.
package run

import (
	"fmt"

	"ejecta/domain/core"
)

// BatchManifest captures the seed material of one packet-seed batch.
// Fingerprint is a pure function of (base seed, seed offset, packet
// count); two batches with equal fingerprints replay identically.
type BatchManifest struct {
	BatchID     core.BatchID   `json:"batch_id"`
	BaseSeed    uint64         `json:"base_seed"`
	SeedOffset  uint64         `json:"seed_offset"`
	NoOfPackets int            `json:"no_of_packets"`
	Fingerprint core.Hash      `json:"fingerprint"`
	CreatedAt   core.Timestamp `json:"created_at"`
}

// NewBatchManifest creates a manifest for one seed batch
func NewBatchManifest(baseSeed, seedOffset uint64, noOfPackets int) BatchManifest {
	return BatchManifest{
		BatchID:     core.NewBatchID(),
		BaseSeed:    baseSeed,
		SeedOffset:  seedOffset,
		NoOfPackets: noOfPackets,
		Fingerprint: ComputeFingerprint(baseSeed, seedOffset, noOfPackets),
		CreatedAt:   core.Now(),
	}
}

// ComputeFingerprint derives the determinism fingerprint of a batch
func ComputeFingerprint(baseSeed, seedOffset uint64, noOfPackets int) core.Hash {
	return core.NewHash(fmt.Appendf(nil, "%d|%d|%d", baseSeed, seedOffset, noOfPackets))
}

// Replays reports whether two manifests describe the same seed material
func (m BatchManifest) Replays(other BatchManifest) bool {
	return m.Fingerprint.Equals(other.Fingerprint)
}

// Validate checks if the manifest is complete
func (m BatchManifest) Validate() error {
	if core.ID(m.BatchID).IsEmpty() {
		return fmt.Errorf("batch manifest: batch_id cannot be empty")
	}
	if m.Fingerprint.IsEmpty() {
		return fmt.Errorf("batch manifest: fingerprint cannot be empty")
	}
	if m.NoOfPackets < 0 {
		return core.NewInvalidPacketCountError(m.NoOfPackets)
	}
	return nil
}

// Package ports defines the contracts between the packet-generation
// core and the transport engine that consumes it.
package ports

import (
	"ejecta/domain/model"
)

// PacketBatch holds the initial state of one batch of Monte Carlo
// packets as four index-corresponding sequences: row i of each slice
// describes the same packet. All four slices share one length.
type PacketBatch struct {
	Radii    []float64 `json:"radii"`
	Nus      []float64 `json:"nus"`
	Mus      []float64 `json:"mus"`
	Energies []float64 `json:"energies"`
}

// Len returns the number of packets in the batch
func (b PacketBatch) Len() int {
	return len(b.Radii)
}

// PacketSource is the capability contract every source variant
// implements: four independent generation operations plus state
// setting. A source owns a private random stream and is not safe for
// concurrent use; callers serialize access per instance.
type PacketSource interface {
	// SetState pulls the physical parameters the variant needs from a
	// model snapshot. Pure assignment, no sampling.
	SetState(m model.Radial1D)

	// CreatePacketSeeds reseeds the source's stream from its base seed
	// plus seedOffset and draws one independent sub-seed per packet.
	CreatePacketSeeds(noOfPackets int, seedOffset uint64) []uint64

	CreatePacketRadii(noOfPackets int) []float64
	CreatePacketNus(noOfPackets int) []float64
	CreatePacketMus(noOfPackets int) []float64
	CreatePacketEnergies(noOfPackets int) []float64

	// CreatePackets validates the source state, then runs the four
	// generation operations in contract order. Implementations share
	// AssembleBatch for the second half.
	CreatePackets(noOfPackets int) (PacketBatch, error)
}

// AssembleBatch is the shared orchestration behavior of CreatePackets:
// radii, then frequencies, then direction cosines, then energies, drawn
// from the source's current stream. Callers validate state first.
func AssembleBatch(s PacketSource, noOfPackets int) PacketBatch {
	return PacketBatch{
		Radii:    s.CreatePacketRadii(noOfPackets),
		Nus:      s.CreatePacketNus(noOfPackets),
		Mus:      s.CreatePacketMus(noOfPackets),
		Energies: s.CreatePacketEnergies(noOfPackets),
	}
}

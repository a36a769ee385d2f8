package montecarlo

import (
	"math/rand/v2"

	"ejecta/domain/run"
	"ejecta/internal/config"
)

// MaxSeedVal bounds per-packet seeds. It must sit multiple orders of
// magnitude above any realistic packet count so that seed collisions
// stay statistically negligible; 2^32 - 1 matches the historical value.
const MaxSeedVal uint64 = 1<<32 - 1

// legacyRand is the process-wide generator used when legacy mode is
// enabled. It exists only to reproduce fixtures generated before
// sources owned private streams. Reseeded at source construction and
// shared by every legacy-mode source in the process, so it is not safe
// under concurrent simulation instances.
var legacyRand = rand.New(rand.NewPCG(0, 0))

func reseedLegacy(seed uint64) {
	legacyRand = rand.New(rand.NewPCG(seed, 0))
}

// seedSequencer derives per-batch random streams from a base seed and a
// per-iteration offset, and hands out one sub-seed per packet. It owns
// the private stream every sampling operation of its source draws from.
type seedSequencer struct {
	baseSeed     uint64
	rng          *rand.Rand
	lastManifest *run.BatchManifest
}

// newSeedSequencer seeds the private stream with baseSeed. In legacy
// mode with a secondary seed supplied, the process-wide generator is
// reseeded instead, reproducing the historical construction order.
func newSeedSequencer(baseSeed uint64, legacySecondSeed *uint64) *seedSequencer {
	s := &seedSequencer{baseSeed: baseSeed}
	s.reseed(baseSeed)
	if config.LegacyModeEnabled && legacySecondSeed != nil {
		reseedLegacy(*legacySecondSeed)
	}
	return s
}

func (s *seedSequencer) reseed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, 0))
}

// createPacketSeeds reseeds the private stream as baseSeed + seedOffset
// and draws noOfPackets integers uniformly from [0, MaxSeedVal]. The
// offset is the iteration number, so iterations of one simulation stay
// decorrelated while re-runs reproduce exactly. Each call records a
// batch manifest for the regression harness.
func (s *seedSequencer) createPacketSeeds(noOfPackets int, seedOffset uint64) []uint64 {
	s.reseed(s.baseSeed + seedOffset)
	seeds := make([]uint64, noOfPackets)
	for i := range seeds {
		seeds[i] = s.rng.Uint64N(MaxSeedVal + 1)
	}
	manifest := run.NewBatchManifest(s.baseSeed, seedOffset, noOfPackets)
	s.lastManifest = &manifest
	return seeds
}

// uniform draws one variate in [0, 1) from the stream the current mode
// selects: the process-wide legacy generator when the legacy switch is
// on, the private stream otherwise. Every sampling call site goes
// through here so the mode check happens per draw, not per code path.
func (s *seedSequencer) uniform() float64 {
	if config.LegacyModeEnabled {
		return legacyRand.Float64()
	}
	return s.rng.Float64()
}

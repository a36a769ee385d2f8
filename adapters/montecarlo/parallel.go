package montecarlo

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"ejecta/ports"
)

// StreamSource is a packet source whose random stream can be forked
// into an independently seeded child. Both source variants implement
// it.
type StreamSource interface {
	ports.PacketSource
	// WithStream returns a copy of the source sharing its physical
	// state but drawing from a fresh private stream seeded with seed.
	WithStream(seed uint64) ports.PacketSource
}

// WithStream forks the source onto a fresh private stream.
func (s *BlackbodySource) WithStream(seed uint64) ports.PacketSource {
	clone := *s
	clone.seq = &seedSequencer{baseSeed: seed}
	clone.seq.reseed(seed)
	return &clone
}

// WithStream forks the source onto a fresh private stream.
func (s *RelativisticBlackbodySource) WithStream(seed uint64) ports.PacketSource {
	clone := *s
	base := *s.BlackbodySource
	base.seq = &seedSequencer{baseSeed: seed}
	base.seq.reseed(seed)
	clone.BlackbodySource = &base
	return &clone
}

// CreatePacketsParallel generates one batch sharded across workers.
// Packets are independent draws, so any partition is statistically
// correct; shard w draws from a child stream seeded off the parent's
// packet-seed sequence at seedOffset, making the result reproducible
// for fixed (base seed, seedOffset, n, workers) though not
// stream-identical to the sequential path. Not meaningful in legacy
// mode, where all draws funnel through the shared generator.
func CreatePacketsParallel(ctx context.Context, src StreamSource, noOfPackets, workers int, seedOffset uint64) (ports.PacketBatch, error) {
	if workers > noOfPackets {
		workers = noOfPackets
	}
	if workers <= 1 {
		return src.CreatePackets(noOfPackets)
	}

	shardSeeds := src.CreatePacketSeeds(workers, seedOffset)
	out := ports.PacketBatch{
		Radii:    make([]float64, noOfPackets),
		Nus:      make([]float64, noOfPackets),
		Mus:      make([]float64, noOfPackets),
		Energies: make([]float64, noOfPackets),
	}

	g, ctx := errgroup.WithContext(ctx)
	shardSize := noOfPackets / workers
	remainder := noOfPackets % workers
	lo := 0
	for w := 0; w < workers; w++ {
		size := shardSize
		if w < remainder {
			size++
		}
		start, end := lo, lo+size
		lo = end
		child := src.WithStream(shardSeeds[w])
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			batch, err := child.CreatePackets(end - start)
			if err != nil {
				return err
			}
			// A child batch normalizes its energies to the shard size;
			// rescale so the assembled batch keeps the batch-level
			// normalization.
			floats.Scale(float64(end-start)/float64(noOfPackets), batch.Energies)
			copy(out.Radii[start:end], batch.Radii)
			copy(out.Nus[start:end], batch.Nus)
			copy(out.Mus[start:end], batch.Mus)
			copy(out.Energies[start:end], batch.Energies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ports.PacketBatch{}, err
	}
	return out, nil
}

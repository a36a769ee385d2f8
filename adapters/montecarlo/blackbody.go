// Package montecarlo implements the packet source contract: it
// generates the initial radii, frequencies, direction cosines and
// energy weights of radiation packets injected at the inner boundary of
// the ejecta, following blackbody emission with an optional
// relativistic boundary correction.
package montecarlo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"ejecta/domain/core"
	"ejecta/domain/model"
	"ejecta/domain/physics"
	"ejecta/domain/run"
	"ejecta/ports"
)

// DefaultThermalSamples is the series truncation length of the
// frequency sampler. The truncation bias is negligible at realistic
// boundary temperatures; shorten only for accuracy/performance studies.
const DefaultThermalSamples = 1000

// SourceConfig carries the constructor-time settings shared by all
// source variants.
type SourceConfig struct {
	// BaseSeed seeds the source's private random stream.
	BaseSeed uint64
	// LegacySecondSeed reseeds the process-wide generator at
	// construction when legacy mode is enabled. Nil outside fixture
	// replays.
	LegacySecondSeed *uint64
	// ThermalSamples overrides the series truncation length of the
	// frequency sampler. Zero means DefaultThermalSamples; values below
	// 2 are raised to 2.
	ThermalSamples int
}

// BlackbodySource generates packets for a static inner boundary at a
// given radius and temperature. Zero limb darkening. Not safe for
// concurrent use; callers serialize access per instance.
type BlackbodySource struct {
	seq            *seedSequencer
	thermalSamples int
	seriesCumSum   []float64

	radius         float64
	temperature    float64
	hasRadius      bool
	hasTemperature bool
}

var _ ports.PacketSource = (*BlackbodySource)(nil)

// NewBlackbodySource creates a source with unset physical state. Call
// SetState or the individual setters before sampling.
func NewBlackbodySource(cfg SourceConfig) *BlackbodySource {
	samples := cfg.ThermalSamples
	if samples == 0 {
		samples = DefaultThermalSamples
	}
	if samples < 2 {
		samples = 2
	}
	return &BlackbodySource{
		seq:            newSeedSequencer(cfg.BaseSeed, cfg.LegacySecondSeed),
		thermalSamples: samples,
	}
}

// SetState pulls the inner boundary radius and temperature from a model
// snapshot. Pure assignment; no sampling.
func (s *BlackbodySource) SetState(m model.Radial1D) {
	s.SetRadius(m.InnerRadius)
	s.SetTemperature(m.InnerTemperature)
}

// SetRadius sets the inner boundary radius in cm
func (s *BlackbodySource) SetRadius(radius float64) {
	s.radius = radius
	s.hasRadius = true
}

// SetTemperature sets the boundary blackbody temperature in K
func (s *BlackbodySource) SetTemperature(temperature float64) {
	s.temperature = temperature
	s.hasTemperature = true
}

// SetTemperatureFromLuminosity derives the boundary temperature from a
// requested luminosity via the Stefan-Boltzmann law, using the current
// radius. Fails if the radius is unset.
func (s *BlackbodySource) SetTemperatureFromLuminosity(luminosity float64) error {
	if !s.hasRadius {
		return core.NewUnsetStateError("blackbody radius")
	}
	s.SetTemperature(physics.TemperatureFromLuminosity(luminosity, s.radius))
	return nil
}

// CreatePacketSeeds reseeds the private stream from the base seed plus
// seedOffset and draws one sub-seed per packet.
func (s *BlackbodySource) CreatePacketSeeds(noOfPackets int, seedOffset uint64) []uint64 {
	return s.seq.createPacketSeeds(noOfPackets, seedOffset)
}

// LastManifest returns the provenance record of the most recent seed
// batch, or nil before the first one.
func (s *BlackbodySource) LastManifest() *run.BatchManifest {
	return s.seq.lastManifest
}

// CreatePackets validates the source state and generates one batch.
// noOfPackets == 0 yields an empty batch, not an error.
func (s *BlackbodySource) CreatePackets(noOfPackets int) (ports.PacketBatch, error) {
	if err := s.checkState(); err != nil {
		return ports.PacketBatch{}, err
	}
	if noOfPackets < 0 {
		return ports.PacketBatch{}, core.NewInvalidPacketCountError(noOfPackets)
	}
	return ports.AssembleBatch(s, noOfPackets), nil
}

func (s *BlackbodySource) checkState() error {
	if !s.hasRadius {
		return core.NewUnsetStateError("blackbody radius")
	}
	if !s.hasTemperature {
		return core.NewUnsetStateError("blackbody temperature")
	}
	return nil
}

// CreatePacketRadii places every packet at the inner boundary radius.
func (s *BlackbodySource) CreatePacketRadii(noOfPackets int) []float64 {
	radii := make([]float64, noOfPackets)
	for i := range radii {
		radii[i] = s.radius
	}
	return radii
}

// CreatePacketNus samples packet frequencies from the blackbody energy
// spectrum with the series inversion of Bjorkman & Wood (2001), after
// Carter & Cashwell (1975). The Planck distribution is an infinite
// mixture of Erlang distributions with weights l^-4: draw xi0 uniform
// and find the smallest l with sum_{i<=l} i^-4 >= xi0 * pi^4/90, then
// draw xi1..xi4 and set x = -ln(xi1 xi2 xi3 xi4)/l, where
// x = h*nu/(k_B*T). The series is truncated at thermalSamples terms.
func (s *BlackbodySource) CreatePacketNus(noOfPackets int) []float64 {
	cumSum := s.seriesTable()
	coef := math.Pi * math.Pi * math.Pi * math.Pi / 90.0
	nuScale := physics.Boltzmann * s.temperature / physics.Planck

	nus := make([]float64, noOfPackets)
	for i := range nus {
		xi0 := s.seq.uniform()
		// 1-based series index; SearchFloat64s returns the first table
		// entry >= the target, matching the minimum-l condition.
		l := float64(sort.SearchFloat64s(cumSum, xi0*coef) + 1)
		xiProd := s.seq.uniform() * s.seq.uniform() * s.seq.uniform() * s.seq.uniform()
		x := -math.Log(xiProd) / l
		nus[i] = x * nuScale
	}
	return nus
}

// seriesTable lazily builds the cumulative sum of i^-4 for
// i = 1..thermalSamples-1. The table depends only on thermalSamples, so
// one build serves every batch.
func (s *BlackbodySource) seriesTable() []float64 {
	if s.seriesCumSum == nil {
		terms := make([]float64, s.thermalSamples-1)
		for i := range terms {
			k := float64(i + 1)
			terms[i] = 1 / (k * k * k * k)
		}
		s.seriesCumSum = make([]float64, len(terms))
		floats.CumSum(s.seriesCumSum, terms)
	}
	return s.seriesCumSum
}

// CreatePacketMus samples zero-limb-darkening direction cosines,
// mu = sqrt(z) with z uniform in [0, 1). Flux-weighted emission from a
// flat boundary makes larger mu proportionally more likely; no inward
// packets are generated.
func (s *BlackbodySource) CreatePacketMus(noOfPackets int) []float64 {
	mus := make([]float64, noOfPackets)
	for i := range mus {
		mus[i] = math.Sqrt(s.seq.uniform())
	}
	return mus
}

// CreatePacketEnergies distributes unit total energy uniformly, 1/n per
// packet, so downstream luminosity scaling sees a normalized ensemble.
func (s *BlackbodySource) CreatePacketEnergies(noOfPackets int) []float64 {
	energies := make([]float64, noOfPackets)
	if noOfPackets == 0 {
		return energies
	}
	weight := 1 / float64(noOfPackets)
	for i := range energies {
		energies[i] = weight
	}
	return energies
}

package montecarlo

import (
	"math"

	"ejecta/domain/core"
	"ejecta/domain/model"
	"ejecta/domain/physics"
	"ejecta/ports"
)

// RelativisticBlackbodySource generates packets for an inner boundary
// that moves with the homologous expansion, beta = (r/t_explosion)/c.
// Radius and frequency sampling are inherited unchanged from the
// blackbody source: in this approximation the frequency distribution is
// treated as unaffected by the boundary's motion. Direction cosines and
// energies carry the aberration and Doppler corrections.
type RelativisticBlackbodySource struct {
	*BlackbodySource

	timeExplosion    float64
	hasTimeExplosion bool
	beta             float64
}

var _ ports.PacketSource = (*RelativisticBlackbodySource)(nil)

// NewRelativisticBlackbodySource creates a source with unset physical
// state. Call SetState or the individual setters before sampling.
func NewRelativisticBlackbodySource(cfg SourceConfig) *RelativisticBlackbodySource {
	return &RelativisticBlackbodySource{
		BlackbodySource: NewBlackbodySource(cfg),
	}
}

// SetState pulls radius, temperature and time since explosion from a
// model snapshot. Pure assignment; no sampling.
func (s *RelativisticBlackbodySource) SetState(m model.Radial1D) {
	s.SetTimeExplosion(m.TimeExplosion)
	s.BlackbodySource.SetState(m)
}

// SetTimeExplosion sets the time elapsed since explosion in s
func (s *RelativisticBlackbodySource) SetTimeExplosion(timeExplosion float64) {
	s.timeExplosion = timeExplosion
	s.hasTimeExplosion = true
}

// Beta returns the boundary velocity fraction computed by the last
// CreatePackets call.
func (s *RelativisticBlackbodySource) Beta() float64 {
	return s.beta
}

// CreatePackets computes the boundary velocity fraction from the
// current state, then generates one batch. noOfPackets == 0 yields an
// empty batch, not an error.
func (s *RelativisticBlackbodySource) CreatePackets(noOfPackets int) (ports.PacketBatch, error) {
	if !s.hasRadius {
		return ports.PacketBatch{}, core.NewUnsetStateError("blackbody radius")
	}
	if !s.hasTimeExplosion {
		return ports.PacketBatch{}, core.NewUnsetStateError("time of explosion")
	}
	if err := s.checkState(); err != nil {
		return ports.PacketBatch{}, err
	}
	if noOfPackets < 0 {
		return ports.PacketBatch{}, core.NewInvalidPacketCountError(noOfPackets)
	}
	s.beta = physics.BoundaryBeta(s.radius, s.timeExplosion)
	return ports.AssembleBatch(s, noOfPackets), nil
}

// CreatePacketMus samples direction cosines for a boundary that is not
// comoving with the material. Inverting the aberrated flux distribution
// gives mu = -beta + sqrt(beta^2 + 2*beta*z + z), which recovers the
// sqrt(z) law as beta approaches 0.
func (s *RelativisticBlackbodySource) CreatePacketMus(noOfPackets int) []float64 {
	beta := s.beta
	mus := make([]float64, noOfPackets)
	for i := range mus {
		z := s.seq.uniform()
		mus[i] = -beta + math.Sqrt(beta*beta+2*beta*z+z)
	}
	return mus
}

// CreatePacketEnergies distributes unit total energy uniformly, scaled
// by (2*beta+1)/(1-beta^2)/gamma. In principle gamma belongs on the
// simulation elapsed time as time dilation between lab and comoving
// frame; every downstream quantity is a ratio of packet energy to
// elapsed time, so the factor is absorbed into the energies instead and
// the batch total equals the boundary-to-comoving conversion exactly.
func (s *RelativisticBlackbodySource) CreatePacketEnergies(noOfPackets int) []float64 {
	energies := make([]float64, noOfPackets)
	if noOfPackets == 0 {
		return energies
	}
	gamma := physics.LorentzGamma(s.beta)
	weight := physics.InnerBoundaryToCMFFactor(s.beta) / gamma / float64(noOfPackets)
	for i := range energies {
		energies[i] = weight
	}
	return energies
}

package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"ejecta/domain/core"
	"ejecta/domain/model"
	"ejecta/domain/physics"
	"ejecta/internal/testkit"
)

func newRelativisticTestSource(t *testing.T) *RelativisticBlackbodySource {
	t.Helper()
	src := NewRelativisticBlackbodySource(SourceConfig{BaseSeed: 23111963428})
	src.SetState(model.Radial1D{
		InnerRadius:      1e15,
		InnerTemperature: 10000,
		TimeExplosion:    13 * 86400,
	})
	return src
}

func TestRelativistic_UnsetState(t *testing.T) {
	t.Run("time of explosion missing", func(t *testing.T) {
		src := NewRelativisticBlackbodySource(SourceConfig{BaseSeed: 1})
		src.SetRadius(1e15)
		src.SetTemperature(10000)
		_, err := src.CreatePackets(100)
		require.Error(t, err)
		assert.True(t, core.IsUnsetStateError(err))
		assert.Contains(t, err.Error(), "time of explosion")
	})

	t.Run("radius missing", func(t *testing.T) {
		src := NewRelativisticBlackbodySource(SourceConfig{BaseSeed: 1})
		src.SetTimeExplosion(13 * 86400)
		_, err := src.CreatePackets(100)
		require.Error(t, err)
		assert.True(t, core.IsUnsetStateError(err))
		assert.Contains(t, err.Error(), "radius")
	})
}

func TestRelativistic_Beta(t *testing.T) {
	src := newRelativisticTestSource(t)
	_, err := src.CreatePackets(10)
	require.NoError(t, err)

	want := physics.BoundaryBeta(1e15, 13*86400)
	assert.Equal(t, want, src.Beta())
	assert.Greater(t, src.Beta(), 0.0)
	assert.Less(t, src.Beta(), 0.1)
}

func TestRelativistic_EnergyCorrection(t *testing.T) {
	src := newRelativisticTestSource(t)

	for _, n := range []int{1, 100, 40000} {
		batch, err := src.CreatePackets(n)
		require.NoError(t, err)

		beta := src.Beta()
		want := physics.InnerBoundaryToCMFFactor(beta) / physics.LorentzGamma(beta)
		assert.InEpsilon(t, want, floats.Sum(batch.Energies), 1e-12, "n=%d", n)
	}
}

func TestRelativistic_MuRange(t *testing.T) {
	src := newRelativisticTestSource(t)
	batch, err := src.CreatePackets(100000)
	require.NoError(t, err)

	for _, mu := range batch.Mus {
		require.GreaterOrEqual(t, mu, 0.0)
		require.Less(t, mu, 1.0)
	}
}

func TestRelativistic_ZeroBetaRecoversSqrtLaw(t *testing.T) {
	if testing.Short() {
		t.Skip("large-sample distribution test")
	}

	// beta = 1e-6: time of explosion chosen so the boundary barely moves
	radius := 1e15
	timeExplosion := radius / (physics.SpeedOfLight * 1e-6)

	rel := NewRelativisticBlackbodySource(SourceConfig{BaseSeed: 555})
	rel.SetState(model.Radial1D{
		InnerRadius:      radius,
		InnerTemperature: 10000,
		TimeExplosion:    timeExplosion,
	})
	relBatch, err := rel.CreatePackets(200000)
	require.NoError(t, err)
	require.InDelta(t, 1e-6, rel.Beta(), 1e-9)

	static := NewBlackbodySource(SourceConfig{BaseSeed: 556})
	static.SetRadius(radius)
	static.SetTemperature(10000)
	mus := static.CreatePacketMus(200000)

	d := testkit.KSDistance(relBatch.Mus, mus)
	assert.Less(t, d, 0.015, "aberrated law must converge to sqrt(z) as beta -> 0")
}

func TestRelativistic_FrequenciesInherited(t *testing.T) {
	// The frequency distribution is treated as unaffected by the
	// boundary's motion: a relativistic source and a blackbody source
	// on the same stream draw identical frequencies.
	rel := newRelativisticTestSource(t)
	static := newTestSource(t)
	require.Equal(t, static.CreatePacketNus(1000), rel.CreatePacketNus(1000))
}

func TestRelativistic_ZeroPackets(t *testing.T) {
	src := newRelativisticTestSource(t)
	batch, err := src.CreatePackets(0)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Len())
}

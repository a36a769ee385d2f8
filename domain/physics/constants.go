// Package physics holds the physical constants and closed-form
// expressions the packet sources depend on. All values are CGS.
package physics

// Fundamental constants (CODATA 2018, CGS)
const (
	// Boltzmann constant in erg/K
	Boltzmann = 1.380649e-16
	// Planck constant in erg s
	Planck = 6.62607015e-27
	// SpeedOfLight in cm/s
	SpeedOfLight = 2.99792458e10
	// StefanBoltzmann constant in erg cm^-2 s^-1 K^-4
	StefanBoltzmann = 5.670374419e-5
)

// Analytic moments of the dimensionless Planck variable x = h*nu/(k_B*T).
const (
	// PlanckMeanEnergyX is the mean of x over the blackbody energy
	// spectrum, 360*zeta(5)/pi^4. Packet frequencies are drawn from the
	// energy spectrum (each packet carries equal energy), so the
	// empirical mean of x over a large batch converges to this value.
	PlanckMeanEnergyX = 3.8322295
	// PlanckMeanPhotonX is the mean of x over the photon-number
	// spectrum, pi^4/(30*zeta(3)).
	PlanckMeanPhotonX = 2.7011780
)

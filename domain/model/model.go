// Package model holds read-only snapshots of the simulation state that
// packet sources pull their physical parameters from. The transport
// engine owns the full model; sources only see this slice of it.
package model

// Radial1D is a snapshot of the innermost shell of a one-dimensional
// radial ejecta model, taken at the start of a simulation iteration.
type Radial1D struct {
	// InnerRadius is the radius of the inner boundary in cm.
	InnerRadius float64
	// InnerTemperature is the boundary blackbody temperature in K.
	InnerTemperature float64
	// TimeExplosion is the time elapsed since explosion in s. Required
	// only by the relativistic source variant.
	TimeExplosion float64
	// RequestedLuminosity is the target luminosity in erg/s, when the
	// caller derives the boundary temperature from it instead of
	// setting InnerTemperature directly. Zero when unused.
	RequestedLuminosity float64
}

package domain

// CatalogRow is one transiting exoplanet as reported by the archive. A planet
// may appear more than once when several discovery facilities report it. The
// five numeric fields used for filtering and plotting are pointers so that a
// missing archive value survives parsing as nil; after cleaning they are all
// guaranteed non-nil.
type CatalogRow struct {
	PlanetName    string
	DiscFacility  string
	GaiaID        string
	RadiusJup     *float64
	MassJup       *float64
	EqTempK       *float64
	StellarRadSun *float64
	VMag          *float64
}

// Complete reports whether every numeric field required downstream is present.
func (r CatalogRow) Complete() bool {
	return r.RadiusJup != nil &&
		r.MassJup != nil &&
		r.EqTempK != nil &&
		r.StellarRadSun != nil &&
		r.VMag != nil
}

// TargetRecord is one survey-tracked planet from the local targets file.
// The flags are not mutually exclusive by construction; Classify resolves
// overlaps with a fixed precedence.
type TargetRecord struct {
	PlanetName  string
	Published   bool
	InPrep      bool
	ObsComplete bool
	Future      bool
}

// ClassifiedTarget joins a catalog row with the survey record that matched it
// and carries the derived observing status.
type ClassifiedTarget struct {
	CatalogRow
	Target TargetRecord
	Status Status
}

// Status enumerates the observing-status categories of a survey target.
type Status string

const (
	StatusPublished  Status = "Published"
	StatusInPrep     Status = "In prep."
	StatusAnalysis   Status = "Analysis underway"
	StatusCollecting Status = "Collecting data"
)

// Statuses returns the closed category set in legend order. The order drives
// legend entries and palette assignment only, never classification logic.
func Statuses() []Status {
	return []Status{StatusPublished, StatusInPrep, StatusAnalysis, StatusCollecting}
}

// Classify maps a target's flags to exactly one status. First match wins:
// published beats in_prep beats obs_complete. A target with both published and
// in_prep set is therefore "Published" on purpose, not by accident. Targets
// with only the future flag (or nothing) fall through to "Collecting data".
func Classify(t TargetRecord) Status {
	switch {
	case t.Published:
		return StatusPublished
	case t.InPrep:
		return StatusInPrep
	case t.ObsComplete:
		return StatusAnalysis
	default:
		return StatusCollecting
	}
}

package render

import (
	"fmt"
	"time"
)

// MoonPhase is one of eight equal slices of the synodic month
type MoonPhase int

// Moon phases, in order from the new moon
const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

const (
	// SynodicPeriod is the mean synodic month in seconds
	SynodicPeriod = 2551442

	// MoonOffset shifts unix time so that zero lands on a known new moon,
	// 2000-01-06 18:14 UTC. The mean period drifts against the real moon by
	// up to about a day, so phases near a boundary may be off by one.
	MoonOffset = -947182440

	moonPhases = 8
)

var moonPhaseNames = [...]string{
	"new moon",
	"waxing crescent",
	"first quarter",
	"waxing gibbous",
	"full moon",
	"waning gibbous",
	"last quarter",
	"waning crescent",
}

func (p MoonPhase) String() string {
	if p < 0 || int(p) >= len(moonPhaseNames) {
		return fmt.Sprintf("MoonPhase(%d)", int(p))
	}
	return moonPhaseNames[p]
}

// InvalidPhaseError carries a remainder outside [0, SynodicPeriod)
type InvalidPhaseError struct {
	Remainder int64
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("moon phase remainder %d outside [0, %d)", e.Remainder, SynodicPeriod)
}

// PhaseFromRemainder buckets a position within the synodic month
func PhaseFromRemainder(r int64) (MoonPhase, error) {
	if r < 0 || r >= SynodicPeriod {
		return 0, &InvalidPhaseError{Remainder: r}
	}
	return MoonPhase(r * moonPhases / SynodicPeriod), nil
}

// MoonPhaseAt returns the moon phase at t
func MoonPhaseAt(t time.Time) MoonPhase {
	r := (t.Unix() + MoonOffset) % SynodicPeriod
	if r < 0 {
		r += SynodicPeriod
	}
	p, _ := PhaseFromRemainder(r)
	return p
}

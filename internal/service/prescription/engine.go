package prescription

import (
	"time"

	"github.com/janisto/corerestore/internal/platform/timeutil"
	"github.com/janisto/corerestore/internal/service/media"
	"github.com/janisto/corerestore/internal/service/profile"
)

// Engine computes prescriptions against a media catalog and an ordered rule
// list. An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog media.Catalog
	rules   []Rule
}

// New creates an Engine. A nil catalog falls back to the built-in one and
// empty rules to DefaultRules.
func New(catalog media.Catalog, rules ...Rule) *Engine {
	if catalog == nil {
		catalog = media.Static()
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{catalog: catalog, rules: rules}
}

var defaultEngine = New(nil)

// Compute returns today's prescription using the built-in catalog.
func Compute(p profile.UserProfile, now time.Time) Prescription {
	return defaultEngine.Compute(p, now)
}

// healerPosition is where today falls in the 16-day rotation.
type healerPosition struct {
	dayIndex int
	cycleKey string
}

// Compute derives the prescription for the calendar day of now, read in now's
// own location. A missing or malformed join date counts as today, and a join
// date in the future counts as day 0.
func (e *Engine) Compute(p profile.UserProfile, now time.Time) Prescription {
	today, _ := timeutil.ParseDate(timeutil.CalendarDate(now))
	join := dateOr(p.JoinDate, today)
	healer := healerPositionAt(join, today)

	rx := Prescription{
		Date:    timeutil.CalendarDate(today),
		Track:   SelectTrack(e.rules, p),
		Minutes: p.Commitment.Minutes(),
	}

	var refs []string
	switch rx.Track {
	case profile.TrackDrySeal:
		start := dateOr(p.DrySealStartedAt, join)
		idx := min(ChallengeDays-1, elapsedDays(start, today))
		rx.DayNumber = idx + 1
		rx.CycleKey = timeutil.CalendarDate(start)
		rx.applyPhase(drySealPhase)
		refs = e.catalog.Refs(profile.TrackDrySeal, idx)

	case profile.TrackRelease:
		idx := min(ChallengeDays-1, healer.dayIndex)
		rx.DayNumber = idx + 1
		rx.CycleKey = healer.cycleKey
		rx.applyPhase(releasePhase)
		refs = e.catalog.Refs(profile.TrackRelease, idx)
		if len(refs) == 0 {
			pool := e.catalog.Decompression()
			refs = pool[:min(releasePoolSize, len(pool))]
		}

	default:
		rx.Track = profile.TrackHealer
		rx.DayNumber = healer.dayIndex + 1
		rx.CycleKey = healer.cycleKey
		rx.applyPhase(healerPhases[healer.dayIndex])
		rx.RequiresCheckinToProceed = rx.DayNumber > FirstMilestoneDay
		rx.CheckinMilestoneDay = FirstMilestoneDay
		if rx.DayNumber > SecondMilestoneDay {
			rx.CheckinMilestoneDay = SecondMilestoneDay
		}
		rx.CheckinDone = p.CheckinDone(rx.CheckinKey())
		refs = e.catalog.Refs(profile.TrackHealer, healer.dayIndex)
	}

	rx.Media = make([]MediaItem, 0, len(refs))
	for _, ref := range refs {
		rx.Media = append(rx.Media, MediaItem{Ref: ref, Title: media.Title(ref)})
	}
	rx.HasContent = len(rx.Media) > 0
	return rx
}

func (rx *Prescription) applyPhase(ph phase) {
	rx.Phase = ph.Name
	rx.Rationale = ph.Rationale
	rx.Pressure = ph.Pressure
}

func healerPositionAt(join, today time.Time) healerPosition {
	days := elapsedDays(join, today)
	cycle := days / HealerCycleDays
	return healerPosition{
		dayIndex: days % HealerCycleDays,
		cycleKey: timeutil.AddDays(join, cycle*HealerCycleDays),
	}
}

// elapsedDays is the whole-day distance from start to today, never negative.
func elapsedDays(start, today time.Time) int {
	return max(0, timeutil.DaysBetween(start, today))
}

func dateOr(s string, fallback time.Time) time.Time {
	if d, ok := timeutil.ParseDate(s); ok {
		return d
	}
	return fallback
}

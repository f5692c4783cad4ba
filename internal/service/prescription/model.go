// Package prescription computes the daily exercise prescription from a
// profile snapshot and the current date. Everything here is pure: the same
// profile and calendar day always give an equal Prescription.
package prescription

import "github.com/janisto/corerestore/internal/service/profile"

// Pressure is the coarse safety label attached to a day's content.
type Pressure string

const (
	PressureLow      Pressure = "Low"
	PressureModerate Pressure = "Moderate"
	PressureHigh     Pressure = "High"
)

// MediaItem is one video of the session with its display title.
type MediaItem struct {
	Ref   string `json:"ref"`
	Title string `json:"title"`
}

// Prescription is the derived plan for one calendar day. It is never stored.
type Prescription struct {
	Date      string        `json:"date"`
	Track     profile.Track `json:"track"`
	DayNumber int           `json:"dayNumber"`
	Phase     string        `json:"phase"`
	Rationale string        `json:"rationale"`
	Minutes   int           `json:"minutes"`
	Pressure  Pressure      `json:"pressure"`
	Media     []MediaItem   `json:"media"`
	CycleKey  string        `json:"cycleKey"`

	RequiresCheckinToProceed bool `json:"requiresCheckinToProceed"`
	CheckinMilestoneDay      int  `json:"checkinMilestoneDay"`
	// CheckinDone reports whether the current milestone check-in is recorded
	// for CycleKey. Always false off the healer track.
	CheckinDone bool `json:"checkinDone"`
	// HasContent is false when no media is authored for the day.
	HasContent bool `json:"hasContent"`
}

// CheckinKey returns the key under which the current milestone check-in is
// recorded.
func (rx Prescription) CheckinKey() profile.CheckinKey {
	return profile.CheckinKey{CycleKey: rx.CycleKey, MilestoneDay: rx.CheckinMilestoneDay}
}

// Gated reports whether progression is blocked on a pending check-in.
func (rx Prescription) Gated() bool {
	return rx.RequiresCheckinToProceed && !rx.CheckinDone
}

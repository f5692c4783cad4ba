package prescription

import "github.com/janisto/corerestore/internal/service/profile"

// Snapshot is the engine-relevant view of a user handed to the coaching
// collaborator.
type Snapshot struct {
	FingerGap   int      `json:"fingerGap,omitempty"`
	TissueDepth string   `json:"tissueDepth,omitempty"`
	Symptoms    []string `json:"symptoms"`
	Track       string   `json:"track"`
	DayNumber   int      `json:"dayNumber"`
	PhaseName   string   `json:"phaseName"`
}

// ContextSnapshot extracts the coaching context from a profile and the
// prescription computed for it.
func ContextSnapshot(p profile.UserProfile, rx Prescription) Snapshot {
	symptoms := make([]string, 0, len(p.Symptoms))
	for _, s := range p.Symptoms {
		symptoms = append(symptoms, string(s))
	}
	return Snapshot{
		FingerGap:   int(p.FingerGap),
		TissueDepth: string(p.TissueDepth),
		Symptoms:    symptoms,
		Track:       string(rx.Track),
		DayNumber:   rx.DayNumber,
		PhaseName:   rx.Phase,
	}
}

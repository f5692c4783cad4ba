package prescription

import "github.com/janisto/corerestore/internal/service/profile"

// Rule selects Track when Applies holds. Rules are evaluated in order and the
// first match wins.
type Rule struct {
	Track   profile.Track
	Applies func(p profile.UserProfile) bool
}

// DefaultRules returns the track priority: dry-seal, then release, then
// healer as the unconditional fallback.
func DefaultRules() []Rule {
	return []Rule{
		{Track: profile.TrackDrySeal, Applies: onDrySeal},
		{Track: profile.TrackRelease, Applies: onRelease},
		{Track: profile.TrackHealer, Applies: always},
	}
}

func onDrySeal(p profile.UserProfile) bool {
	return p.HasSymptom(profile.SymptomIncontinence) && !p.DrySealComplete()
}

func onRelease(p profile.UserProfile) bool {
	return p.HasSymptom(profile.SymptomPelvicPain)
}

func always(profile.UserProfile) bool { return true }

// SelectTrack returns the track of the first applicable rule, or healer when
// none applies.
func SelectTrack(rules []Rule, p profile.UserProfile) profile.Track {
	for _, r := range rules {
		if r.Applies(p) {
			return r.Track
		}
	}
	return profile.TrackHealer
}

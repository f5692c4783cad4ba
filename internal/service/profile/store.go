package profile

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/janisto/corerestore/internal/platform/timeutil"
)

// Observer is called with the new snapshot after every mutation.
type Observer func(UserProfile)

type subscription struct {
	id int
	fn Observer
}

// Store holds one user's profile and exposes the only permitted mutations.
// Each setter updates exactly the fields it owns; the derived risk flags are
// recomputed after every mutation. A Store has a single writer and is not
// safe for concurrent use.
type Store struct {
	profile   UserProfile
	observers []subscription
	nextID    int
}

// NewStore wraps a copy of p. Derived flags are recomputed so a stale or
// hand-edited record cannot carry inconsistent flags.
func NewStore(p UserProfile) *Store {
	s := &Store{profile: p.Clone()}
	s.applyFlags()
	return s
}

// Snapshot returns an immutable copy of the current profile.
func (s *Store) Snapshot() UserProfile {
	return s.profile.Clone()
}

// Subscribe registers fn for change notifications and returns a function that
// removes it.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) applyFlags() {
	f := DeriveFlags(s.profile)
	s.profile.HighRisk = f.HighRisk
	s.profile.HerniaSafe = f.HerniaSafe
}

func (s *Store) mutate(fn func(p *UserProfile)) {
	fn(&s.profile)
	s.applyFlags()
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range slices.Clone(s.observers) {
		sub.fn(snap)
	}
}

// SetName sets the display name.
func (s *Store) SetName(name string) {
	s.mutate(func(p *UserProfile) { p.Name = strings.TrimSpace(name) })
}

// SetAge sets the free-form age answer.
func (s *Store) SetAge(age string) {
	s.mutate(func(p *UserProfile) { p.Age = strings.TrimSpace(age) })
}

// SetFingerGap stores the finger-gap measurement, clamping to 1..4.
func (s *Store) SetFingerGap(n int) {
	s.mutate(func(p *UserProfile) { p.FingerGap = ClampFingerGap(n) })
}

// SetTissueDepth stores the tissue depth. Unknown values are ignored.
func (s *Store) SetTissueDepth(d TissueDepth) {
	if !d.Valid() {
		return
	}
	s.mutate(func(p *UserProfile) { p.TissueDepth = d })
}

func (s *Store) SetShape(v Shape) {
	if !v.Valid() {
		return
	}
	s.mutate(func(p *UserProfile) { p.Shape = v })
}

// SetNavel stores the navel assessment. Unknown values are ignored.
func (s *Store) SetNavel(n Navel) {
	if !n.Valid() {
		return
	}
	s.mutate(func(p *UserProfile) { p.Navel = n })
}

func (s *Store) SetTimeline(t Timeline) {
	if !t.Valid() {
		return
	}
	s.mutate(func(p *UserProfile) { p.Timeline = t })
}

// SetProblemExercises replaces the problem-exercise set. Unknown entries are
// dropped; the stored set is sorted and duplicate free.
func (s *Store) SetProblemExercises(list []ProblemExercise) {
	set := normalizeSet(list, ProblemExercise.Valid)
	s.mutate(func(p *UserProfile) { p.ProblemExercises = set })
}

// SetSymptoms replaces the symptom set. Unknown entries are dropped.
func (s *Store) SetSymptoms(list []Symptom) {
	set := normalizeSet(list, Symptom.Valid)
	s.mutate(func(p *UserProfile) { p.Symptoms = set })
}

func (s *Store) SetCommitment(c Commitment) {
	if !c.Valid() {
		return
	}
	s.mutate(func(p *UserProfile) { p.Commitment = c })
}

// SetJoinDate records the subscription start. The join date is immutable once
// set; later calls and malformed dates are ignored.
func (s *Store) SetJoinDate(date string) {
	if s.profile.JoinDate != "" || !timeutil.IsDate(date) {
		return
	}
	s.mutate(func(p *UserProfile) { p.JoinDate = date })
}

// BeginDrySeal starts a dry-seal challenge on date. While a challenge is
// unresolved its start date never moves. Once a challenge is complete, a new
// one may begin: the finished one is archived and the day map is cleared.
func (s *Store) BeginDrySeal(date string) {
	if !timeutil.IsDate(date) {
		return
	}
	cur := s.profile
	if cur.DrySealStartedAt != "" && !cur.DrySealComplete() {
		return
	}
	s.mutate(func(p *UserProfile) {
		if p.DrySealStartedAt != "" {
			p.DrySealChallenges = p.DrySealChallenges.Append(DrySealChallenge{
				StartedAt: p.DrySealStartedAt,
				Days:      completedDays(p.DrySealDays),
			})
		}
		p.DrySealStartedAt = date
		p.DrySealDays = nil
	})
}

// MarkDrySealDay marks date as done in the current dry-seal challenge.
func (s *Store) MarkDrySealDay(date string) {
	if !timeutil.IsDate(date) {
		return
	}
	s.mutate(func(p *UserProfile) {
		if p.DrySealDays == nil {
			p.DrySealDays = make(map[string]bool)
		}
		p.DrySealDays[date] = true
	})
}

// AddMeasurement appends a self-assessment. The finger gap is clamped.
func (s *Store) AddMeasurement(m Measurement) {
	m.FingerGap = ClampFingerGap(int(m.FingerGap))
	if !m.TissueDepth.Valid() {
		m.TissueDepth = ""
	}
	s.mutate(func(p *UserProfile) { p.Measurements = p.Measurements.Append(m) })
}

// AddWorkoutCompletion appends a finished session.
func (s *Store) AddWorkoutCompletion(w WorkoutCompletion) {
	s.mutate(func(p *UserProfile) { p.Workouts = p.Workouts.Append(w) })
}

// AddPainLog appends a pain/swap event, assigning an ID when missing.
func (s *Store) AddPainLog(l PainLog) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.mutate(func(p *UserProfile) { p.PainLogs = p.PainLogs.Append(l) })
}

// SetCheckinDone upserts the check-in state for key.
func (s *Store) SetCheckinDone(key CheckinKey, done bool) {
	s.mutate(func(p *UserProfile) {
		if p.Checkins == nil {
			p.Checkins = make(map[CheckinKey]bool)
		}
		p.Checkins[key] = done
	})
}

func (s *Store) SetPremium(premium bool) {
	s.mutate(func(p *UserProfile) { p.Premium = premium })
}

// SetOnboardingStep records onboarding progress; negative steps clamp to 0.
func (s *Store) SetOnboardingStep(step int) {
	s.mutate(func(p *UserProfile) { p.OnboardingStep = max(step, 0) })
}

func normalizeSet[T ~string](list []T, valid func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if valid(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func completedDays(days map[string]bool) []string {
	out := make([]string, 0, len(days))
	for d, done := range days {
		if done {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}

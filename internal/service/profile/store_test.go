package profile

import (
	"reflect"
	"testing"
	"time"
)

func TestSettersTouchOnlyOwnedFields(t *testing.T) {
	base := UserProfile{
		Name:       "Maria",
		FingerGap:  2,
		Shape:      ShapeCone,
		Timeline:   Timeline6To12Weeks,
		Commitment: Commitment15,
		JoinDate:   "2024-01-01",
	}

	tests := []struct {
		name   string
		apply  func(s *Store)
		expect func(p *UserProfile)
	}{
		{"name", func(s *Store) { s.SetName("  Anna ") }, func(p *UserProfile) { p.Name = "Anna" }},
		{"age", func(s *Store) { s.SetAge("34") }, func(p *UserProfile) { p.Age = "34" }},
		{"finger gap", func(s *Store) { s.SetFingerGap(7) }, func(p *UserProfile) { p.FingerGap = 4 }},
		{"shape", func(s *Store) { s.SetShape(ShapePooch) }, func(p *UserProfile) { p.Shape = ShapePooch }},
		{"timeline", func(s *Store) { s.SetTimeline(TimelinePregnant) }, func(p *UserProfile) { p.Timeline = TimelinePregnant }},
		{"commitment", func(s *Store) { s.SetCommitment(Commitment30) }, func(p *UserProfile) { p.Commitment = Commitment30 }},
		{"premium", func(s *Store) { s.SetPremium(true) }, func(p *UserProfile) { p.Premium = true }},
		{"onboarding", func(s *Store) { s.SetOnboardingStep(-2) }, func(p *UserProfile) { p.OnboardingStep = 0 }},
		{"tissue depth", func(s *Store) { s.SetTissueDepth(TissuePulse) }, func(p *UserProfile) {
			p.TissueDepth = TissuePulse
			p.HighRisk = true
		}},
		{"navel", func(s *Store) { s.SetNavel(NavelHernia) }, func(p *UserProfile) {
			p.Navel = NavelHernia
			p.HerniaSafe = true
		}},
		{"invalid enum ignored", func(s *Store) { s.SetShape("blob") }, func(p *UserProfile) {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(base)
			tt.apply(s)

			want := base.Clone()
			tt.expect(&want)
			if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
				t.Fatalf("unexpected profile\n got: %+v\nwant: %+v", got, want)
			}
		})
	}
}

func TestDerivedFlagsFollowLastUpdate(t *testing.T) {
	s := NewStore(UserProfile{})
	s.SetTissueDepth(TissuePulse)
	s.SetNavel(NavelHernia)
	s.SetTissueDepth(TissueFirm)
	s.SetNavel(NavelFlat)

	p := s.Snapshot()
	if p.HighRisk || p.HerniaSafe {
		t.Fatalf("flags must track the latest assessment, got %+v", DeriveFlags(p))
	}
}

func TestNewStoreRederivesStaleFlags(t *testing.T) {
	s := NewStore(UserProfile{TissueDepth: TissueSoft, HighRisk: true, Navel: NavelHernia})
	p := s.Snapshot()
	if p.HighRisk || !p.HerniaSafe {
		t.Fatalf("expected flags recomputed on load, got %+v", DeriveFlags(p))
	}
}

func TestSetSymptomsNormalizesSet(t *testing.T) {
	s := NewStore(UserProfile{})
	s.SetSymptoms([]Symptom{SymptomPelvicPain, "unknown", SymptomIncontinence, SymptomPelvicPain})

	want := []Symptom{SymptomIncontinence, SymptomPelvicPain}
	if got := s.Snapshot().Symptoms; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetJoinDateIsImmutable(t *testing.T) {
	s := NewStore(UserProfile{})
	s.SetJoinDate("not-a-date")
	if s.Snapshot().JoinDate != "" {
		t.Fatal("malformed join date must be ignored")
	}
	s.SetJoinDate("2024-01-01")
	s.SetJoinDate("2024-02-01")
	if got := s.Snapshot().JoinDate; got != "2024-01-01" {
		t.Fatalf("expected first join date to stick, got %s", got)
	}
}

func TestBeginDrySealLifecycle(t *testing.T) {
	s := NewStore(UserProfile{})
	s.BeginDrySeal("2024-03-01")
	s.BeginDrySeal("2024-03-04")
	if got := s.Snapshot().DrySealStartedAt; got != "2024-03-01" {
		t.Fatalf("start must not move while the challenge is open, got %s", got)
	}

	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-02", "2024-03-04", "2024-03-05", "2024-03-07", "2024-03-08"} {
		s.MarkDrySealDay(d)
	}
	if s.Snapshot().DrySealComplete() {
		t.Fatal("duplicate day must count once")
	}
	s.MarkDrySealDay("2024-03-09")
	if !s.Snapshot().DrySealComplete() {
		t.Fatal("expected challenge complete after 7 distinct days")
	}

	s.BeginDrySeal("2024-04-01")
	p := s.Snapshot()
	if p.DrySealStartedAt != "2024-04-01" {
		t.Fatalf("expected new challenge start, got %s", p.DrySealStartedAt)
	}
	if p.DrySealCompletedDays() != 0 {
		t.Fatalf("expected day map reset, got %d days", p.DrySealCompletedDays())
	}
	if p.DrySealChallenges.Len() != 1 || len(p.DrySealChallenges.At(0).Days) != 7 {
		t.Fatalf("expected archived challenge with 7 days, got %+v", p.DrySealChallenges.All())
	}
}

func TestAddMeasurementAppendsExactlyOne(t *testing.T) {
	s := NewStore(UserProfile{})
	s.AddMeasurement(Measurement{Date: "2024-01-01", FingerGap: 3, TissueDepth: TissueSoft})
	first := s.Snapshot().Measurements.All()

	s.AddMeasurement(Measurement{Date: "2024-01-08", FingerGap: 9, TissueDepth: "mushy"})
	p := s.Snapshot()

	if p.Measurements.Len() != 2 {
		t.Fatalf("expected 2 measurements, got %d", p.Measurements.Len())
	}
	if !reflect.DeepEqual(p.Measurements.All()[:1], first) {
		t.Fatal("earlier entries must not change")
	}
	last, _ := p.Measurements.Last()
	if last.FingerGap != 4 || last.TissueDepth != "" {
		t.Fatalf("expected clamped gap and dropped depth, got %+v", last)
	}
}

func TestAddPainLogAssignsID(t *testing.T) {
	s := NewStore(UserProfile{})
	s.AddPainLog(PainLog{Timestamp: time.Now(), Date: "2024-01-02", CurrentVideo: "a.mp4"})
	s.AddPainLog(PainLog{ID: "fixed", Date: "2024-01-03", CurrentVideo: "b.mp4"})

	logs := s.Snapshot().PainLogs.All()
	if logs[0].ID == "" {
		t.Fatal("expected generated id")
	}
	if logs[1].ID != "fixed" {
		t.Fatalf("expected caller id to be kept, got %s", logs[1].ID)
	}
}

func TestSetCheckinDoneUpserts(t *testing.T) {
	s := NewStore(UserProfile{})
	key := CheckinKey{CycleKey: "2024-01-01", MilestoneDay: 7}
	s.SetCheckinDone(key, true)
	s.SetCheckinDone(key, true)

	p := s.Snapshot()
	if len(p.Checkins) != 1 || !p.CheckinDone(key) {
		t.Fatalf("expected single upserted entry, got %v", p.Checkins)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewStore(UserProfile{})
	s.MarkDrySealDay("2024-01-01")
	snap := s.Snapshot()
	s.MarkDrySealDay("2024-01-02")
	s.AddWorkoutCompletion(WorkoutCompletion{Date: "2024-01-02", Track: TrackHealer, DayNumber: 2})

	if len(snap.DrySealDays) != 1 || snap.Workouts.Len() != 0 {
		t.Fatal("snapshot must not observe later mutations")
	}
}

func TestObserversNotifiedAndCancelled(t *testing.T) {
	s := NewStore(UserProfile{})
	var seen []UserProfile
	cancel := s.Subscribe(func(p UserProfile) { seen = append(seen, p) })

	s.SetFingerGap(3)
	s.SetShape("invalid")
	cancel()
	s.SetFingerGap(2)

	if len(seen) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(seen))
	}
	if seen[0].FingerGap != 3 {
		t.Fatalf("observer got stale snapshot: %+v", seen[0])
	}
}

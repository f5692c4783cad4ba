package profile

import (
	"encoding/json"
	"testing"
)

func TestClampFingerGap(t *testing.T) {
	tests := []struct {
		in   int
		want FingerGap
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 4}, {99, 4}, {-3, 1},
	}
	for _, tt := range tests {
		if got := ClampFingerGap(tt.in); got != tt.want {
			t.Errorf("ClampFingerGap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name  string
		p     UserProfile
		flags Flags
	}{
		{"empty", UserProfile{}, Flags{}},
		{"pulse", UserProfile{TissueDepth: TissuePulse}, Flags{HighRisk: true}},
		{"soft", UserProfile{TissueDepth: TissueSoft}, Flags{}},
		{"hernia", UserProfile{Navel: NavelHernia}, Flags{HerniaSafe: true}},
		{"both", UserProfile{TissueDepth: TissuePulse, Navel: NavelHernia}, Flags{HighRisk: true, HerniaSafe: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFlags(tt.p); got != tt.flags {
				t.Fatalf("expected %+v, got %+v", tt.flags, got)
			}
		})
	}
}

func TestCommitmentMinutes(t *testing.T) {
	tests := map[Commitment]int{"15": 15, "30": 30, "5": 5, "": 5, "45": 5}
	for c, want := range tests {
		if got := c.Minutes(); got != want {
			t.Errorf("Commitment(%q).Minutes() = %d, want %d", c, got, want)
		}
	}
}

func TestDrySealCompleteCountsDistinctTrueDays(t *testing.T) {
	p := UserProfile{DrySealDays: map[string]bool{
		"2024-01-01": true, "2024-01-03": true, "2024-01-05": true,
		"2024-01-08": true, "2024-01-09": true, "2024-01-12": true,
		"2024-01-13": false,
	}}
	if p.DrySealComplete() {
		t.Fatal("six true days must not complete the challenge")
	}
	p.DrySealDays["2024-01-20"] = true
	if !p.DrySealComplete() {
		t.Fatal("seven non-consecutive true days complete the challenge")
	}
}

func TestCheckinKeyTextRoundTrip(t *testing.T) {
	p := UserProfile{Checkins: map[CheckinKey]bool{
		{CycleKey: "2024-01-01", MilestoneDay: 7}:  true,
		{CycleKey: "2024-01-01", MilestoneDay: 14}: false,
	}}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded UserProfile
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.CheckinDone(CheckinKey{CycleKey: "2024-01-01", MilestoneDay: 7}) {
		t.Fatal("expected day-7 check-in to survive encoding")
	}
	if decoded.CheckinDone(CheckinKey{CycleKey: "2024-01-01", MilestoneDay: 14}) {
		t.Fatal("expected day-14 check-in to stay false")
	}

	var k CheckinKey
	if err := k.UnmarshalText([]byte("no-separator")); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := UserProfile{
		Symptoms:    []Symptom{SymptomBackPain},
		DrySealDays: map[string]bool{"2024-01-01": true},
	}
	c := p.Clone()
	c.Symptoms[0] = SymptomBloating
	c.DrySealDays["2024-01-02"] = true

	if p.Symptoms[0] != SymptomBackPain {
		t.Fatal("clone shares symptom slice")
	}
	if len(p.DrySealDays) != 1 {
		t.Fatal("clone shares dry-seal map")
	}
}

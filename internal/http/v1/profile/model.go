package profile

import (
	"slices"
	"strings"

	"github.com/janisto/corerestore/internal/platform/timeutil"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

// Profile represents a user profile response.
type Profile struct {
	Name             string   `json:"name,omitempty"             doc:"Display name"                     example:"Maria"`
	Age              string   `json:"age,omitempty"              doc:"Free-form age answer"             example:"34"`
	FingerGap        int      `json:"fingerGap,omitempty"        doc:"Finger-gap width (1-4, 4 = 4+)"   example:"2"`
	TissueDepth      string   `json:"tissueDepth,omitempty"      doc:"Tissue depth"                     example:"soft"`
	Shape            string   `json:"shape,omitempty"            doc:"Abdomen shape under load"         example:"cone"`
	Navel            string   `json:"navel,omitempty"            doc:"Navel assessment"                 example:"flat"`
	Timeline         string   `json:"timeline,omitempty"         doc:"Postpartum timeline bucket"       example:"6-12"`
	HighRisk         bool     `json:"highRisk"                   doc:"Derived from tissue depth pulse"  example:"false"`
	HerniaSafe       bool     `json:"herniaSafe"                 doc:"Derived from navel hernia"        example:"false"`
	ProblemExercises []string `json:"problemExercises"           doc:"Exercises reported as worsening"`
	Symptoms         []string `json:"symptoms"                   doc:"Secondary symptoms"`
	Commitment       string   `json:"commitment,omitempty"       doc:"Daily commitment in minutes"      example:"15"`
	JoinDate         string   `json:"joinDate,omitempty"         doc:"Subscription start date"          example:"2024-01-01"`
	DrySealStartedAt string   `json:"drySealStartedAt,omitempty" doc:"Current dry-seal challenge start" example:"2024-01-03"`
	DrySealDays      []string `json:"drySealDays"                doc:"Days completed in the current dry-seal challenge"`
	DrySealComplete  bool     `json:"drySealComplete"            doc:"Whether the current challenge is finished"`
	Premium          bool     `json:"premium"                    doc:"Premium entitlement"              example:"true"`
	OnboardingStep   int      `json:"onboardingStep"             doc:"Onboarding progress"              example:"3"`

	Measurements []Measurement `json:"measurementHistory" doc:"Self-assessments, oldest first"`
	Workouts     []Workout     `json:"workoutCompletions" doc:"Completed sessions, oldest first"`
	PainLogs     []PainLog     `json:"painLogs"           doc:"Exercise swaps, oldest first"`
	Checkins     []Checkin     `json:"checkins"           doc:"Recorded milestone check-ins"`
}

// Measurement is one self-assessment entry.
type Measurement struct {
	Date        string `json:"date"                  doc:"Calendar date"  example:"2024-01-08"`
	FingerGap   int    `json:"fingerGap"             doc:"Finger-gap"     example:"2"`
	TissueDepth string `json:"tissueDepth,omitempty" doc:"Tissue depth"   example:"firm"`
}

// Workout is a completed daily session.
type Workout struct {
	Date        string        `json:"date"        doc:"Calendar date"        example:"2024-01-08"`
	Track       string        `json:"track"       doc:"Track"                example:"healer"`
	DayNumber   int           `json:"dayNumber"   doc:"Day within the track" example:"8"`
	CompletedAt timeutil.Time `json:"completedAt" doc:"Completion timestamp" example:"2024-01-08T07:15:00.000Z"`
}

// PainLog is an exercise swapped out because it caused pain.
type PainLog struct {
	ID               string        `json:"id"                         doc:"Entry identifier"     example:"0b6f0c5e-3f1c-4c1a-9a57-6f0e5d1f7a11"`
	Timestamp        timeutil.Time `json:"timestamp"                  doc:"When it was reported" example:"2024-01-08T07:15:00.000Z"`
	Date             string        `json:"date"                       doc:"Calendar date"        example:"2024-01-08"`
	CurrentVideo     string        `json:"currentVideo"               doc:"Video that hurt"`
	ReplacementVideo string        `json:"replacementVideo,omitempty" doc:"Video shown instead"`
	Note             string        `json:"note,omitempty"             doc:"Free-text note"`
}

// Checkin is one recorded milestone re-assessment.
type Checkin struct {
	CycleKey     string `json:"cycleKey"     doc:"Cycle start date" example:"2024-01-01"`
	MilestoneDay int    `json:"milestoneDay" doc:"Milestone day"    example:"7"`
	Done         bool   `json:"done"         doc:"Recorded"         example:"true"`
}

func toHTTPProfile(p *profilesvc.UserProfile) Profile {
	out := Profile{
		Name:             p.Name,
		Age:              p.Age,
		FingerGap:        int(p.FingerGap),
		TissueDepth:      string(p.TissueDepth),
		Shape:            string(p.Shape),
		Navel:            string(p.Navel),
		Timeline:         string(p.Timeline),
		HighRisk:         p.HighRisk,
		HerniaSafe:       p.HerniaSafe,
		ProblemExercises: toStrings(p.ProblemExercises),
		Symptoms:         toStrings(p.Symptoms),
		Commitment:       string(p.Commitment),
		JoinDate:         p.JoinDate,
		DrySealStartedAt: p.DrySealStartedAt,
		DrySealDays:      []string{},
		DrySealComplete:  p.DrySealComplete(),
		Premium:          p.Premium,
		OnboardingStep:   p.OnboardingStep,
		Measurements:     convertAll(p.Measurements.All(), toHTTPMeasurement),
		Workouts:         convertAll(p.Workouts.All(), toHTTPWorkout),
		PainLogs:         convertAll(p.PainLogs.All(), toHTTPPainLog),
		Checkins:         []Checkin{},
	}
	for d, done := range p.DrySealDays {
		if done {
			out.DrySealDays = append(out.DrySealDays, d)
		}
	}
	slices.Sort(out.DrySealDays)

	for k, done := range p.Checkins {
		out.Checkins = append(out.Checkins, Checkin{CycleKey: k.CycleKey, MilestoneDay: k.MilestoneDay, Done: done})
	}
	slices.SortFunc(out.Checkins, func(a, b Checkin) int {
		if c := strings.Compare(a.CycleKey, b.CycleKey); c != 0 {
			return c
		}
		return a.MilestoneDay - b.MilestoneDay
	})
	return out
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}

func fromStrings[T ~string](in []string) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, T(v))
	}
	return out
}

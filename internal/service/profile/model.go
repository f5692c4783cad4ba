package profile

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// FingerGap is the self-measured width of the midline separation in finger
// widths. Zero means not yet measured; set values are always 1..4 where 4
// stands for "4 or more".
type FingerGap int

const (
	MinFingerGap FingerGap = 1
	MaxFingerGap FingerGap = 4
)

// ClampFingerGap normalizes raw numeric input into the 1..4 range.
func ClampFingerGap(n int) FingerGap {
	return FingerGap(min(max(n, int(MinFingerGap)), int(MaxFingerGap)))
}

// TissueDepth is how the tissue between the muscle bellies feels under the fingers.
type TissueDepth string

const (
	TissueFirm  TissueDepth = "firm"
	TissueSoft  TissueDepth = "soft"
	TissuePulse TissueDepth = "pulse"
)

func (d TissueDepth) Valid() bool {
	switch d {
	case TissueFirm, TissueSoft, TissuePulse:
		return true
	}
	return false
}

// Shape is the visual classification of the abdomen under load.
type Shape string

const (
	ShapePooch Shape = "pooch"
	ShapeGap   Shape = "gap"
	ShapeCone  Shape = "cone"
)

func (s Shape) Valid() bool {
	switch s {
	case ShapePooch, ShapeGap, ShapeCone:
		return true
	}
	return false
}

// Navel is the navel self-assessment.
type Navel string

const (
	NavelOutie    Navel = "outie"
	NavelFlat     Navel = "flat"
	NavelNoChange Navel = "no_change"
	NavelHernia   Navel = "hernia"
)

func (n Navel) Valid() bool {
	switch n {
	case NavelOutie, NavelFlat, NavelNoChange, NavelHernia:
		return true
	}
	return false
}

// Timeline is the postpartum timeline bucket.
type Timeline string

const (
	TimelinePregnant   Timeline = "pregnant"
	Timeline0To6Weeks  Timeline = "0-6"
	Timeline6To12Weeks Timeline = "6-12"
	Timeline1To3Years  Timeline = "1-3"
	Timeline3PlusYears Timeline = "3+"
)

func (t Timeline) Valid() bool {
	switch t {
	case TimelinePregnant, Timeline0To6Weeks, Timeline6To12Weeks, Timeline1To3Years, Timeline3PlusYears:
		return true
	}
	return false
}

// Commitment is the daily time commitment in minutes.
type Commitment string

const (
	Commitment5  Commitment = "5"
	Commitment15 Commitment = "15"
	Commitment30 Commitment = "30"
)

func (c Commitment) Valid() bool {
	switch c {
	case Commitment5, Commitment15, Commitment30:
		return true
	}
	return false
}

// Minutes maps the commitment to a session length. Unset maps to the
// shortest session.
func (c Commitment) Minutes() int {
	switch c {
	case Commitment15:
		return 15
	case Commitment30:
		return 30
	default:
		return 5
	}
}

// Symptom is a secondary symptom tag.
type Symptom string

const (
	SymptomIncontinence Symptom = "incontinence"
	SymptomPelvicPain   Symptom = "pelvicPain"
	SymptomBackPain     Symptom = "backPain"
	SymptomBloating     Symptom = "bloating"
	SymptomPainfulSex   Symptom = "painfulSex"
	SymptomPoorPosture  Symptom = "poorPosture"
)

// Symptoms is the fixed symptom vocabulary.
var Symptoms = []Symptom{
	SymptomIncontinence, SymptomPelvicPain, SymptomBackPain,
	SymptomBloating, SymptomPainfulSex, SymptomPoorPosture,
}

func (s Symptom) Valid() bool { return slices.Contains(Symptoms, s) }

// ProblemExercise is an exercise the user reports as making things worse.
type ProblemExercise string

const (
	ExerciseCrunches     ProblemExercise = "crunches"
	ExercisePlanks       ProblemExercise = "planks"
	ExerciseSitups       ProblemExercise = "situps"
	ExerciseHeavyLifting ProblemExercise = "heavyLifting"
	ExerciseRunning      ProblemExercise = "running"
	ExerciseJumping      ProblemExercise = "jumping"
	ExerciseTwisting     ProblemExercise = "twisting"
)

// ProblemExercises is the fixed problem-exercise vocabulary.
var ProblemExercises = []ProblemExercise{
	ExerciseCrunches, ExercisePlanks, ExerciseSitups, ExerciseHeavyLifting,
	ExerciseRunning, ExerciseJumping, ExerciseTwisting,
}

func (e ProblemExercise) Valid() bool { return slices.Contains(ProblemExercises, e) }

// Track identifies a prescription program.
type Track string

const (
	TrackHealer  Track = "healer"
	TrackDrySeal Track = "drySeal"
	TrackRelease Track = "release"
)

func (t Track) Valid() bool {
	switch t {
	case TrackHealer, TrackDrySeal, TrackRelease:
		return true
	}
	return false
}

// Measurement is one self-assessment entry.
type Measurement struct {
	Date        string      `json:"date"`
	FingerGap   FingerGap   `json:"fingerGap"`
	TissueDepth TissueDepth `json:"tissueDepth,omitempty"`
}

// WorkoutCompletion records a finished daily session.
type WorkoutCompletion struct {
	Date        string    `json:"date"`
	Track       Track     `json:"track"`
	DayNumber   int       `json:"dayNumber"`
	CompletedAt time.Time `json:"completedAt"`
}

// PainLog records an exercise swapped out because it caused pain.
type PainLog struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Date             string    `json:"date"`
	CurrentVideo     string    `json:"currentVideo"`
	ReplacementVideo string    `json:"replacementVideo,omitempty"`
	Note             string    `json:"note,omitempty"`
}

// DrySealChallenge is an archived, completed dry-seal challenge.
type DrySealChallenge struct {
	StartedAt string   `json:"startedAt"`
	Days      []string `json:"days"`
}

// CheckinKey addresses a re-assessment for one milestone of one cycle. It
// encodes as "<cycleKey>#<milestoneDay>" so it can key a JSON object.
type CheckinKey struct {
	CycleKey     string
	MilestoneDay int
}

func (k CheckinKey) String() string {
	return k.CycleKey + "#" + strconv.Itoa(k.MilestoneDay)
}

func (k CheckinKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CheckinKey) UnmarshalText(b []byte) error {
	cycle, day, ok := strings.Cut(string(b), "#")
	if !ok {
		return fmt.Errorf("invalid check-in key %q", b)
	}
	n, err := strconv.Atoi(day)
	if err != nil {
		return fmt.Errorf("invalid check-in milestone in %q: %w", b, err)
	}
	k.CycleKey = cycle
	k.MilestoneDay = n
	return nil
}

// Flags are the risk flags derived from the assessment.
type Flags struct {
	HighRisk   bool
	HerniaSafe bool
}

// DeriveFlags is the single definition of the derived risk flags.
func DeriveFlags(p UserProfile) Flags {
	return Flags{
		HighRisk:   p.TissueDepth == TissuePulse,
		HerniaSafe: p.Navel == NavelHernia,
	}
}

// DrySealRequiredDays is the number of distinct completed days that finish a
// dry-seal challenge.
const DrySealRequiredDays = 7

// UserProfile is the full user state consumed by the prescription engine.
// Values handed out by the Store are snapshots: mutating one does not affect
// the Store.
type UserProfile struct {
	Name string `json:"name,omitempty"`
	Age  string `json:"age,omitempty"`

	FingerGap   FingerGap   `json:"fingerGap,omitempty"`
	TissueDepth TissueDepth `json:"tissueDepth,omitempty"`
	Shape       Shape       `json:"shape,omitempty"`
	Navel       Navel       `json:"navel,omitempty"`
	Timeline    Timeline    `json:"timeline,omitempty"`

	HighRisk   bool `json:"highRisk"`
	HerniaSafe bool `json:"herniaSafe"`

	ProblemExercises []ProblemExercise `json:"problemExercises,omitempty"`
	Symptoms         []Symptom         `json:"symptoms,omitempty"`
	Commitment       Commitment        `json:"commitment,omitempty"`

	JoinDate         string          `json:"joinDate,omitempty"`
	DrySealStartedAt string          `json:"drySealStartedAt,omitempty"`
	DrySealDays      map[string]bool `json:"drySealDays,omitempty"`

	Measurements      Log[Measurement]       `json:"measurementHistory"`
	Workouts          Log[WorkoutCompletion] `json:"workoutCompletions"`
	PainLogs          Log[PainLog]           `json:"painLogs"`
	DrySealChallenges Log[DrySealChallenge]  `json:"drySealChallenges"`
	Checkins          map[CheckinKey]bool    `json:"checkins,omitempty"`

	Premium        bool `json:"premium"`
	OnboardingStep int  `json:"onboardingStep"`
}

// Clone returns a deep copy. History logs are immutable and shared.
func (p UserProfile) Clone() UserProfile {
	c := p
	c.ProblemExercises = slices.Clone(p.ProblemExercises)
	c.Symptoms = slices.Clone(p.Symptoms)
	c.DrySealDays = maps.Clone(p.DrySealDays)
	c.Checkins = maps.Clone(p.Checkins)
	return c
}

// HasSymptom reports whether s is in the symptom set.
func (p UserProfile) HasSymptom(s Symptom) bool {
	return slices.Contains(p.Symptoms, s)
}

// DrySealCompletedDays counts the distinct days marked done in the current challenge.
func (p UserProfile) DrySealCompletedDays() int {
	n := 0
	for _, done := range p.DrySealDays {
		if done {
			n++
		}
	}
	return n
}

// DrySealComplete reports whether the current dry-seal challenge is finished.
func (p UserProfile) DrySealComplete() bool {
	return p.DrySealCompletedDays() >= DrySealRequiredDays
}

// CheckinDone reports whether the check-in for key has been recorded.
func (p UserProfile) CheckinDone(key CheckinKey) bool {
	return p.Checkins[key]
}

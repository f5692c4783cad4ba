package prescription

// HealerCycleDays is the length of the healer rotation.
const HealerCycleDays = 16

// ChallengeDays is the length of the dry-seal challenge and the release table.
const ChallengeDays = 7

// Check-in milestones within a healer cycle.
const (
	FirstMilestoneDay  = 7
	SecondMilestoneDay = 14
)

// releasePoolSize is how many decompression entries stand in for an empty
// release day.
const releasePoolSize = 3

type phase struct {
	Name      string
	Rationale string
	Pressure  Pressure
}

var healerPhases = [HealerCycleDays]phase{
	{"Neuromuscular Awakening", "Reconnect breath and deep core before adding any load.", PressureLow},
	{"Breath and Brace", "Coordinate the exhale with a gentle core draw-in.", PressureLow},
	{"Deep Core Activation", "Wake up the transverse abdominis with supported positions.", PressureLow},
	{"Pelvic Floor Connection", "Pair pelvic floor lifts with core engagement.", PressureLow},
	{"Posture Reset", "Stack ribs over pelvis to reduce strain on the midline.", PressureLow},
	{"Tension Integration", "Hold midline tension through small limb movements.", PressureModerate},
	{"Stability Under Load", "Keep the midline controlled while limbs move opposite.", PressureModerate},
	{"Controlled Rotation", "Introduce gentle rotation without doming.", PressureModerate},
	{"Decompression and Recovery", "Unload the spine and pelvis after the first week.", PressureLow},
	{"Functional Strength", "Carry core control into everyday movement patterns.", PressureModerate},
	{"Lateral Stability", "Build side-body support for the obliques.", PressureModerate},
	{"Endurance Building", "Extend hold times while keeping tension even.", PressureModerate},
	{"Dynamic Control", "Add tempo while the midline stays flat.", PressureHigh},
	{"Integration Challenge", "Combine stability and strength in longer sequences.", PressureHigh},
	{"Active Recovery", "Lengthen and breathe to let tissue adapt.", PressureLow},
	{"Cycle Consolidation", "Review the cycle's key movements before the next rotation.", PressureModerate},
}

var (
	drySealPhase = phase{
		Name:      "Dry Seal Challenge",
		Rationale: "Seven days of pelvic floor timing work to reduce leaks under pressure.",
		Pressure:  PressureLow,
	}
	releasePhase = phase{
		Name:      "Pelvic Release",
		Rationale: "Down-train pelvic tension before strengthening resumes.",
		Pressure:  PressureLow,
	}
)

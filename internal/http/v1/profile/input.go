package profile

import "github.com/janisto/corerestore/internal/platform/pagination"

// ProfileCreateInput for POST /profile (no body needed)
type ProfileCreateInput struct{}

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileUpdateInput for PATCH /profile. Each field maps to one onboarding pick.
type ProfileUpdateInput struct {
	Body struct {
		Name             *string  `json:"name,omitempty"             maxLength:"100"                    doc:"Display name"           example:"Maria"`
		Age              *string  `json:"age,omitempty"              maxLength:"20"                     doc:"Free-form age answer"   example:"34"`
		FingerGap        *int     `json:"fingerGap,omitempty"                                           doc:"Finger-gap, clamped to 1-4" example:"2"`
		TissueDepth      *string  `json:"tissueDepth,omitempty"      enum:"firm,soft,pulse"             doc:"Tissue depth"           example:"soft"`
		Shape            *string  `json:"shape,omitempty"            enum:"pooch,gap,cone"              doc:"Abdomen shape"          example:"cone"`
		Navel            *string  `json:"navel,omitempty"            enum:"outie,flat,no_change,hernia" doc:"Navel assessment"       example:"flat"`
		Timeline         *string  `json:"timeline,omitempty"         enum:"pregnant,0-6,6-12,1-3,3+"    doc:"Postpartum timeline"    example:"6-12"`
		ProblemExercises []string `json:"problemExercises,omitempty" enum:"crunches,planks,situps,heavyLifting,running,jumping,twisting" doc:"Replaces the problem-exercise set"`
		Symptoms         []string `json:"symptoms,omitempty"         enum:"incontinence,pelvicPain,backPain,bloating,painfulSex,poorPosture" doc:"Replaces the symptom set"`
		Commitment       *string  `json:"commitment,omitempty"       enum:"5,15,30"                     doc:"Daily minutes"          example:"15"`
		OnboardingStep   *int     `json:"onboardingStep,omitempty"   minimum:"0"                        doc:"Onboarding progress"    example:"3"`
	}
}

// SubscriptionInput for POST /profile/subscription
type SubscriptionInput struct {
	Body struct {
		JoinDate string `json:"joinDate,omitempty" format:"date" doc:"Subscription start, defaults to today" example:"2024-01-01"`
	}
}

// MeasurementInput for POST /profile/measurements
type MeasurementInput struct {
	Body struct {
		Date        string `json:"date,omitempty"        format:"date"          doc:"Calendar date, defaults to today" example:"2024-01-08"`
		FingerGap   int    `json:"fingerGap"             required:"true"        doc:"Finger-gap, clamped to 1-4"       example:"2"`
		TissueDepth string `json:"tissueDepth,omitempty" enum:"firm,soft,pulse" doc:"Tissue depth"                     example:"firm"`
	}
}

// WorkoutInput for POST /profile/workouts
type WorkoutInput struct {
	Body struct {
		Date      string `json:"date,omitempty" format:"date"                  doc:"Calendar date, defaults to today" example:"2024-01-08"`
		Track     string `json:"track"          enum:"healer,drySeal,release"  required:"true" doc:"Track"            example:"healer"`
		DayNumber int    `json:"dayNumber"      minimum:"1" maximum:"16"       required:"true" doc:"Day within track" example:"8"`
	}
}

// PainLogInput for POST /profile/pain-logs
type PainLogInput struct {
	Body struct {
		Date             string `json:"date,omitempty"             format:"date"                     doc:"Calendar date, defaults to today" example:"2024-01-08"`
		CurrentVideo     string `json:"currentVideo"               minLength:"1" maxLength:"2048" required:"true" doc:"Video that hurt"`
		ReplacementVideo string `json:"replacementVideo,omitempty" maxLength:"2048"                  doc:"Video shown instead"`
		Note             string `json:"note,omitempty"             maxLength:"1000"                  doc:"Free-text note"`
	}
}

// CheckinInput for PUT /profile/checkins/{cycleKey}/{day}
type CheckinInput struct {
	CycleKey string `path:"cycleKey" format:"date" doc:"Cycle start date" example:"2024-01-01"`
	Day      int    `path:"day"      minimum:"7" maximum:"14" doc:"Milestone day (7 or 14)" example:"7"`
	Body     struct {
		Done bool `json:"done" required:"true" doc:"Whether the check-in is recorded" example:"true"`
	}
}

// HistoryListInput pages through one of the profile's history logs.
type HistoryListInput struct {
	pagination.Params
}

package profile

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/corerestore/internal/platform/auth"
	"github.com/janisto/corerestore/internal/platform/timeutil"
	rx "github.com/janisto/corerestore/internal/service/prescription"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

var bearerAuth = []map[string][]string{
	{"bearerAuth": {}},
}

// Register registers profile endpoints. Dates omitted by the client default to
// today in loc.
func Register(api huma.API, svc profilesvc.Service, loc *time.Location) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profile",
		Summary:       "Create user profile",
		Description:   "Creates an empty profile for the authenticated user on first app use.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerAuth,
	}, func(ctx context.Context, _ *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.Create(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCreateOutput{
			Location: "/v1/profile",
			Body:     toHTTPProfile(p),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Description: "Retrieves the profile for the authenticated user.",
		Tags:        []string{"Profile"},
		Security:    bearerAuth,
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.Get(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/profile",
		Summary:     "Record onboarding picks",
		Description: "Applies onboarding answers. Only provided fields are updated. " +
			"Adding the incontinence symptom starts a dry-seal challenge today.",
		Tags:     []string{"Profile"},
		Security: bearerAuth,
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)
		if !hasProfileUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}

		today := timeutil.Today(loc)
		p, err := svc.Update(ctx, user.UID, "update", func(s *profilesvc.Store) error {
			applyPicks(s, input, today)
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "start-subscription",
		Method:      http.MethodPost,
		Path:        "/profile/subscription",
		Summary:     "Activate premium",
		Description: "Marks the profile premium once the billing provider has granted the premium " +
			"entitlement claim. The join date is set on first activation and never changes afterwards.",
		Tags:     []string{"Profile"},
		Security: bearerAuth,
	}, func(ctx context.Context, input *SubscriptionInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)
		if !user.Premium {
			return nil, huma.Error403Forbidden("premium entitlement required")
		}

		joinDate := dateOrToday(input.Body.JoinDate, loc)
		p, err := svc.Update(ctx, user.UID, "subscribe", func(s *profilesvc.Store) error {
			s.SetPremium(true)
			s.SetJoinDate(joinDate)
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-measurement",
		Method:        http.MethodPost,
		Path:          "/profile/measurements",
		Summary:       "Log a self-assessment",
		Description:   "Appends a measurement and makes it the current assessment.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerAuth,
	}, func(ctx context.Context, input *MeasurementInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		m := profilesvc.Measurement{
			Date:        dateOrToday(input.Body.Date, loc),
			FingerGap:   profilesvc.ClampFingerGap(input.Body.FingerGap),
			TissueDepth: profilesvc.TissueDepth(input.Body.TissueDepth),
		}
		p, err := svc.Update(ctx, user.UID, "add_measurement", func(s *profilesvc.Store) error {
			s.AddMeasurement(m)
			s.SetFingerGap(int(m.FingerGap))
			s.SetTissueDepth(m.TissueDepth)
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-workout",
		Method:        http.MethodPost,
		Path:          "/profile/workouts",
		Summary:       "Log a completed session",
		Description:   "Appends a workout completion. A dry-seal session also marks that challenge day done.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerAuth,
	}, func(ctx context.Context, input *WorkoutInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		w := profilesvc.WorkoutCompletion{
			Date:        dateOrToday(input.Body.Date, loc),
			Track:       profilesvc.Track(input.Body.Track),
			DayNumber:   input.Body.DayNumber,
			CompletedAt: time.Now().UTC(),
		}
		p, err := svc.Update(ctx, user.UID, "add_workout", func(s *profilesvc.Store) error {
			s.AddWorkoutCompletion(w)
			if w.Track == profilesvc.TrackDrySeal {
				s.MarkDrySealDay(w.Date)
			}
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-pain-log",
		Method:        http.MethodPost,
		Path:          "/profile/pain-logs",
		Summary:       "Report a painful exercise",
		Description:   "Appends a pain/swap event.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerAuth,
	}, func(ctx context.Context, input *PainLogInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		l := profilesvc.PainLog{
			Timestamp:        time.Now().UTC(),
			Date:             dateOrToday(input.Body.Date, loc),
			CurrentVideo:     input.Body.CurrentVideo,
			ReplacementVideo: input.Body.ReplacementVideo,
			Note:             input.Body.Note,
		}
		p, err := svc.Update(ctx, user.UID, "add_pain_log", func(s *profilesvc.Store) error {
			s.AddPainLog(l)
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-checkin",
		Method:      http.MethodPut,
		Path:        "/profile/checkins/{cycleKey}/{day}",
		Summary:     "Record a milestone check-in",
		Description: "Upserts the check-in state for one milestone of one cycle.",
		Tags:        []string{"Profile"},
		Security:    bearerAuth,
	}, func(ctx context.Context, input *CheckinInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)
		if input.Day != rx.FirstMilestoneDay && input.Day != rx.SecondMilestoneDay {
			return nil, huma.Error422UnprocessableEntity("invalid milestone day")
		}

		key := profilesvc.CheckinKey{CycleKey: input.CycleKey, MilestoneDay: input.Day}
		p, err := svc.Update(ctx, user.UID, "set_checkin", func(s *profilesvc.Store) error {
			s.SetCheckinDone(key, input.Body.Done)
			return nil
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})
}

// applyPicks maps each provided field to its one setter.
func applyPicks(s *profilesvc.Store, input *ProfileUpdateInput, today string) {
	b := input.Body
	if b.Name != nil {
		s.SetName(*b.Name)
	}
	if b.Age != nil {
		s.SetAge(*b.Age)
	}
	if b.FingerGap != nil {
		s.SetFingerGap(*b.FingerGap)
	}
	if b.TissueDepth != nil {
		s.SetTissueDepth(profilesvc.TissueDepth(*b.TissueDepth))
	}
	if b.Shape != nil {
		s.SetShape(profilesvc.Shape(*b.Shape))
	}
	if b.Navel != nil {
		s.SetNavel(profilesvc.Navel(*b.Navel))
	}
	if b.Timeline != nil {
		s.SetTimeline(profilesvc.Timeline(*b.Timeline))
	}
	if b.ProblemExercises != nil {
		s.SetProblemExercises(fromStrings[profilesvc.ProblemExercise](b.ProblemExercises))
	}
	if b.Symptoms != nil {
		had := s.Snapshot().HasSymptom(profilesvc.SymptomIncontinence)
		s.SetSymptoms(fromStrings[profilesvc.Symptom](b.Symptoms))
		if !had && s.Snapshot().HasSymptom(profilesvc.SymptomIncontinence) {
			s.BeginDrySeal(today)
		}
	}
	if b.Commitment != nil {
		s.SetCommitment(profilesvc.Commitment(*b.Commitment))
	}
	if b.OnboardingStep != nil {
		s.SetOnboardingStep(*b.OnboardingStep)
	}
}

func hasProfileUpdateFields(input *ProfileUpdateInput) bool {
	b := input.Body
	return b.Name != nil ||
		b.Age != nil ||
		b.FingerGap != nil ||
		b.TissueDepth != nil ||
		b.Shape != nil ||
		b.Navel != nil ||
		b.Timeline != nil ||
		b.ProblemExercises != nil ||
		b.Symptoms != nil ||
		b.Commitment != nil ||
		b.OnboardingStep != nil
}

func dateOrToday(date string, loc *time.Location) string {
	if timeutil.IsDate(date) {
		return date
	}
	return timeutil.Today(loc)
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profilesvc.ErrAlreadyExists):
		return huma.Error409Conflict("profile already exists")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

package prescription

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

// Register registers the prescription endpoint.
func Register(api huma.API, svc profilesvc.Service, engine *rx.Engine, loc *time.Location) {
	huma.Register(api, huma.Operation{
		OperationID: "get-prescription",
		Method:      http.MethodGet,
		Path:        "/prescription",
		Summary:     "Get today's prescription",
		Description: "Computes the track, day, media and check-in gate for the authenticated user. " +
			"Results are stable for a given calendar day.",
		Tags: []string{"Prescription"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *PrescriptionGetInput) (*PrescriptionGetOutput, error) {
		user := auth.UserFromContext(ctx)

		now, err := ResolveNow(input.Date, input.TZ, loc)
		if err != nil {
			return nil, err
		}

		p, err := svc.Get(ctx, user.UID)
		if err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("profile not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		return &PrescriptionGetOutput{Body: toHTTPPrescription(engine.Compute(*p, now))}, nil
	})
}

// ResolveNow picks the instant the engine runs at: noon of date in tz when a
// date is given, otherwise the current time in tz. tz falls back to def.
func ResolveNow(date, tz string, def *time.Location) (time.Time, error) {
	loc := def
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, huma.Error422UnprocessableEntity("unknown time zone")
		}
		loc = l
	}
	if date == "" {
		return time.Now().In(loc), nil
	}
	d, ok := timeutil.ParseDate(date)
	if !ok {
		return time.Time{}, huma.Error422UnprocessableEntity("invalid date")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
}

package profile

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/corerestore/internal/platform/auth"
	"github.com/janisto/corerestore/internal/platform/pagination"
	"github.com/janisto/corerestore/internal/platform/timeutil"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

const (
	kindMeasurement = "measurement"
	kindWorkout     = "workout"
	kindPainLog     = "painLog"
)

// indexed pairs a history entry with its position in the append-only log.
// Positions never change, so they make stable cursor keys.
type indexed[T any] struct {
	pos   int
	entry T
}

// RegisterHistory registers the paginated history listings. prefix is the API
// base path used when building Link headers.
func RegisterHistory(api huma.API, svc profilesvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-measurements",
		Method:      http.MethodGet,
		Path:        "/profile/measurements",
		Summary:     "List self-assessments",
		Description: "Returns measurement history newest first. Follow the Link header to page.",
		Tags:        []string{"History"},
		Security:    bearerAuth,
	}, func(ctx context.Context, input *HistoryListInput) (*HistoryOutput[Measurement], error) {
		return listHistory(ctx, svc, input, pagination.Request{Kind: kindMeasurement, BasePath: prefix + "/profile/measurements"},
			func(p *profilesvc.UserProfile) []profilesvc.Measurement { return p.Measurements.All() },
			toHTTPMeasurement)
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-workouts",
		Method:      http.MethodGet,
		Path:        "/profile/workouts",
		Summary:     "List completed sessions",
		Description: "Returns workout completions newest first. Follow the Link header to page.",
		Tags:        []string{"History"},
		Security:    bearerAuth,
	}, func(ctx context.Context, input *HistoryListInput) (*HistoryOutput[Workout], error) {
		return listHistory(ctx, svc, input, pagination.Request{Kind: kindWorkout, BasePath: prefix + "/profile/workouts"},
			func(p *profilesvc.UserProfile) []profilesvc.WorkoutCompletion { return p.Workouts.All() },
			toHTTPWorkout)
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-pain-logs",
		Method:      http.MethodGet,
		Path:        "/profile/pain-logs",
		Summary:     "List exercise swaps",
		Description: "Returns pain/swap events newest first. Follow the Link header to page.",
		Tags:        []string{"History"},
		Security:    bearerAuth,
	}, func(ctx context.Context, input *HistoryListInput) (*HistoryOutput[PainLog], error) {
		return listHistory(ctx, svc, input, pagination.Request{Kind: kindPainLog, BasePath: prefix + "/profile/pain-logs"},
			func(p *profilesvc.UserProfile) []profilesvc.PainLog { return p.PainLogs.All() },
			toHTTPPainLog)
	})
}

func listHistory[S, T any](
	ctx context.Context,
	svc profilesvc.Service,
	input *HistoryListInput,
	req pagination.Request,
	entries func(*profilesvc.UserProfile) []S,
	convert func(S) T,
) (*HistoryOutput[T], error) {
	user := auth.UserFromContext(ctx)

	p, err := svc.Get(ctx, user.UID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	all := entries(p)
	newest := make([]indexed[S], len(all))
	for i, e := range all {
		newest[len(all)-1-i] = indexed[S]{pos: i, entry: e}
	}

	req.Cursor = input.Cursor
	req.Limit = input.Limit
	page, err := pagination.Paginate(newest, req, func(v indexed[S]) string { return strconv.Itoa(v.pos) })
	if err != nil {
		if errors.Is(err, pagination.ErrCursorUnknown) {
			return nil, huma.Error400BadRequest("cursor references unknown entry")
		}
		if errors.Is(err, pagination.ErrCursorKind) {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}
		return nil, huma.Error400BadRequest("invalid cursor format")
	}

	out := &HistoryOutput[T]{
		Link: page.LinkHeader,
		Body: HistoryData[T]{Items: make([]T, 0, len(page.Items)), Total: page.Total},
	}
	for _, v := range page.Items {
		out.Body.Items = append(out.Body.Items, convert(v.entry))
	}
	return out, nil
}

func toHTTPMeasurement(m profilesvc.Measurement) Measurement {
	return Measurement{
		Date:        m.Date,
		FingerGap:   int(m.FingerGap),
		TissueDepth: string(m.TissueDepth),
	}
}

func toHTTPWorkout(w profilesvc.WorkoutCompletion) Workout {
	return Workout{
		Date:        w.Date,
		Track:       string(w.Track),
		DayNumber:   w.DayNumber,
		CompletedAt: timeutil.NewTime(w.CompletedAt),
	}
}

func toHTTPPainLog(l profilesvc.PainLog) PainLog {
	return PainLog{
		ID:               l.ID,
		Timestamp:        timeutil.NewTime(l.Timestamp),
		Date:             l.Date,
		CurrentVideo:     l.CurrentVideo,
		ReplacementVideo: l.ReplacementVideo,
		Note:             l.Note,
	}
}

func convertAll[S, T any](in []S, convert func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, convert(v))
	}
	return out
}

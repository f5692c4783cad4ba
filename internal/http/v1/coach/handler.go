package coach

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/corerestore/internal/http/v1/prescription"
	"github.com/janisto/corerestore/internal/platform/auth"
	coachsvc "github.com/janisto/corerestore/internal/service/coach"
	rx "github.com/janisto/corerestore/internal/service/prescription"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

// Register registers the coaching chat endpoint. A nil coach service makes the
// endpoint answer 503.
func Register(api huma.API, profiles profilesvc.Service, svc coachsvc.Service, engine *rx.Engine, loc *time.Location) {
	huma.Register(api, huma.Operation{
		OperationID: "coach-chat",
		Method:      http.MethodPost,
		Path:        "/coach/chat",
		Summary:     "Ask the coach",
		Description: "Relays a message to the coaching service together with today's prescription context.",
		Tags:        []string{"Coach"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
		if svc == nil {
			return nil, huma.Error503ServiceUnavailable("coach not configured")
		}
		user := auth.UserFromContext(ctx)

		now, err := prescription.ResolveNow("", input.TZ, loc)
		if err != nil {
			return nil, err
		}
		p, err := profiles.Get(ctx, user.UID)
		if err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("profile not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		plan := engine.Compute(*p, now)
		reply, err := svc.Reply(ctx, coachsvc.Request{
			Message: input.Body.Message,
			Context: rx.ContextSnapshot(*p, plan),
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ChatOutput{Body: ChatReply{Reply: reply.Reply}}, nil
	})
}

func mapServiceError(err error) error {
	var upstreamErr *coachsvc.UpstreamError

	if errors.As(err, &upstreamErr) {
		switch upstreamErr.Kind {
		case coachsvc.UpstreamErrorKindRateLimited:
			rateLimitErr := huma.Error429TooManyRequests("rate limit exceeded")
			if upstreamErr.RetryAfter != "" {
				headers := make(http.Header)
				headers.Set("Retry-After", upstreamErr.RetryAfter)
				return huma.ErrorWithHeaders(rateLimitErr, headers)
			}
			return rateLimitErr
		case coachsvc.UpstreamErrorKindUnavailable:
			return huma.Error503ServiceUnavailable("coach unavailable")
		default:
			return huma.Error502BadGateway("upstream error")
		}
	}

	switch {
	case errors.Is(err, coachsvc.ErrRateLimited):
		return huma.Error429TooManyRequests("rate limit exceeded")
	case errors.Is(err, coachsvc.ErrUnavailable):
		return huma.Error503ServiceUnavailable("coach unavailable")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("coach timed out")
	default:
		return huma.Error502BadGateway("upstream error")
	}
}

package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/janisto/corerestore/internal/service/prescription"
)

func TestMockCoachService(t *testing.T) {
	m := NewMockCoachService()
	reply, err := m.Reply(context.Background(), Request{
		Message: "hello",
		Context: prescription.Snapshot{PhaseName: "Posture Reset"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Reply != "Keep going with Posture Reset." {
		t.Errorf("unexpected reply %q", reply.Reply)
	}

	m.Err = ErrUnavailable
	if _, err := m.Reply(context.Background(), Request{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(m.Requests()) != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", len(m.Requests()))
	}
}

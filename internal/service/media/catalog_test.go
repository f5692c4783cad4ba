package media

import (
	"strings"
	"testing"

	"github.com/janisto/corerestore/internal/service/profile"
)

func TestStaticCatalogShape(t *testing.T) {
	c := Static()
	tests := []struct {
		track profile.Track
		slots int
	}{
		{profile.TrackHealer, 16},
		{profile.TrackDrySeal, 7},
		{profile.TrackRelease, 7},
	}
	for _, tt := range tests {
		if got := len(c.tracks[tt.track]); got != tt.slots {
			t.Errorf("%s: expected %d slots, got %d", tt.track, tt.slots, got)
		}
	}
	if len(c.Decompression()) < 3 {
		t.Fatal("decompression pool needs at least three entries")
	}
}

func TestStaticCatalogSampleRefs(t *testing.T) {
	c := Static()
	day7 := c.Refs(profile.TrackHealer, 6)
	if len(day7) == 0 || !containsSuffix(day7, "Day 7/Revolved triangle (left).mp4?alt=media") {
		t.Fatalf("expected day 7 rotation ref, got %v", day7)
	}
	day9 := c.Refs(profile.TrackHealer, 8)
	if !containsSuffix(day9, "Day 9/Child_s pose.mp4?alt=media") {
		t.Fatalf("expected day 9 child pose ref, got %v", day9)
	}
}

func TestStaticCatalogGaps(t *testing.T) {
	c := Static()
	tests := []struct {
		name  string
		track profile.Track
		index int
	}{
		{"authored gap", profile.TrackHealer, 12},
		{"sparse release", profile.TrackRelease, 2},
		{"negative index", profile.TrackHealer, -1},
		{"past end", profile.TrackDrySeal, 7},
		{"unknown track", profile.Track("other"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Refs(tt.track, tt.index)
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil list, got %#v", got)
			}
		})
	}
}

func TestStaticCatalogReturnsCopies(t *testing.T) {
	c := NewStaticCatalog(map[profile.Track][][]string{
		profile.TrackHealer: {{"a.mp4", "b.mp4"}},
	}, []string{"p.mp4"})

	refs := c.Refs(profile.TrackHealer, 0)
	refs[0] = "changed"
	pool := c.Decompression()
	pool[0] = "changed"

	if c.Refs(profile.TrackHealer, 0)[0] != "a.mp4" || c.Decompression()[0] != "p.mp4" {
		t.Fatal("catalog table was mutated through a returned slice")
	}
}

func containsSuffix(refs []string, suffix string) bool {
	for _, r := range refs {
		if strings.HasSuffix(r, suffix) {
			return true
		}
	}
	return false
}

package media

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "rotation with side label",
			ref:  "https://example.com/o/healer/Day 7/Revolved triangle (left).mp4?alt=media&token=xyz",
			want: "Rotation Stretch — Left",
		},
		{
			name: "child pose with underscore apostrophe",
			ref:  "https://example.com/o/healer/Day 9/Child_s pose.mp4?alt=media&token=abc",
			want: "Back Decompression Stretch",
		},
		{
			name: "percent encoded path",
			ref:  "https://example.com/o/healer%2FDay%207%2FRevolved%20triangle%20(right).mp4?alt=media",
			want: "Rotation Stretch — Right",
		},
		{name: "child pose with typographic apostrophe", ref: "healer/Day 9/Child’s pose.mp4", want: "Back Decompression Stretch"},
		{name: "invalid utf-8 only", ref: "\xff\xfe.mp4", want: FallbackTitle},
		{name: "invalid utf-8 dropped", ref: "Dead\xff bug.mp4", want: "Dead Bug"},
		{name: "brand removed", ref: "healer/Day 2/Tupler elevator.mp4", want: "Elevator"},
		{name: "brand and side", ref: "MUTU side lying leg lift (right).mp4", want: "Side Lying Leg Lift — Right"},
		{name: "specific pose before generic", ref: "Bridge pose.mp4", want: "Glute Bridge"},
		{name: "generic pose cleanup", ref: "Chair pose.mov", want: "Chair"},
		{name: "warrior", ref: "Warrior II pose (left).mp4", want: "Standing Lunge Hold — Left"},
		{name: "case insensitive", ref: "CAT COW.mp4", want: "Spine Mobility Flow"},
		{name: "plain name", ref: "Dead bug.mp4", want: "Dead Bug"},
		{name: "empty", ref: "", want: FallbackTitle},
		{name: "only pose", ref: "folder/pose.mp4", want: FallbackTitle},
		{name: "only brand", ref: "Pilates.mp4?alt=media", want: FallbackTitle},
		{name: "trailing slash", ref: "healer/Day 1/", want: FallbackTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.ref); got != tt.want {
				t.Fatalf("Title(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestTitleBuiltinCatalogNeverEmpty(t *testing.T) {
	c := Static()
	var refs []string
	for _, slots := range c.tracks {
		for _, slot := range slots {
			refs = append(refs, slot...)
		}
	}
	refs = append(refs, c.Decompression()...)

	for _, r := range refs {
		if Title(r) == "" {
			t.Fatalf("empty title for %q", r)
		}
	}
}

// Package media holds the built-in exercise video catalog and turns opaque
// video references into display titles.
package media

import (
	"slices"

	"github.com/janisto/corerestore/internal/service/profile"
)

// Catalog maps a track and a 0-based day index to an ordered list of opaque
// media references. Missing days yield an empty list.
type Catalog interface {
	Refs(track profile.Track, dayIndex int) []string
	// Decompression returns the general decompression pool used when a
	// release day has no authored content.
	Decompression() []string
}

const storageBase = "https://firebasestorage.googleapis.com/v0/b/corerestore-media.appspot.com/o/"

func ref(path string) string {
	return storageBase + path + "?alt=media"
}

// StaticCatalog is the build-time media table. It is read-only and safe for
// concurrent use.
type StaticCatalog struct {
	tracks map[profile.Track][][]string
	pool   []string
}

// Static returns the built-in catalog.
func Static() *StaticCatalog {
	return builtin
}

// NewStaticCatalog builds a catalog from explicit tables. Slots may be nil.
func NewStaticCatalog(tracks map[profile.Track][][]string, pool []string) *StaticCatalog {
	return &StaticCatalog{tracks: tracks, pool: pool}
}

// Refs returns a copy of the references for the slot, or an empty list when
// the track, index or slot is not authored.
func (c *StaticCatalog) Refs(track profile.Track, dayIndex int) []string {
	slots := c.tracks[track]
	if dayIndex < 0 || dayIndex >= len(slots) {
		return []string{}
	}
	return cloneRefs(slots[dayIndex])
}

func (c *StaticCatalog) Decompression() []string {
	return cloneRefs(c.pool)
}

func cloneRefs(refs []string) []string {
	if len(refs) == 0 {
		return []string{}
	}
	return slices.Clone(refs)
}

var builtin = NewStaticCatalog(map[profile.Track][][]string{
	profile.TrackHealer: {
		{
			ref("healer/Day 1/Diaphragmatic breathing.mp4"),
			ref("healer/Day 1/Pelvic tilts.mp4"),
			ref("healer/Day 1/Heel slides.mp4"),
		},
		{
			ref("healer/Day 2/360 breathing.mp4"),
			ref("healer/Day 2/Tupler elevator.mp4"),
			ref("healer/Day 2/Supine marching.mp4"),
		},
		{
			ref("healer/Day 3/Transverse activation.mp4"),
			ref("healer/Day 3/Bridge pose.mp4"),
			ref("healer/Day 3/Toe taps.mp4"),
		},
		{
			ref("healer/Day 4/Pelvic floor lifts.mp4"),
			ref("healer/Day 4/Clamshells (left).mp4"),
			ref("healer/Day 4/Clamshells (right).mp4"),
		},
		{
			ref("healer/Day 5/Wall posture hold.mp4"),
			ref("healer/Day 5/Cat cow.mp4"),
			ref("healer/Day 5/Mountain pose.mp4"),
		},
		{
			ref("healer/Day 6/Dead bug.mp4"),
			ref("healer/Day 6/MUTU side lying leg lift (left).mp4"),
			ref("healer/Day 6/MUTU side lying leg lift (right).mp4"),
		},
		{
			ref("healer/Day 7/Bird dog.mp4"),
			ref("healer/Day 7/Revolved triangle (left).mp4"),
			ref("healer/Day 7/Revolved triangle (right).mp4"),
		},
		{
			ref("healer/Day 8/Seated rotation.mp4"),
			ref("healer/Day 8/Thread the needle (left).mp4"),
			ref("healer/Day 8/Thread the needle (right).mp4"),
		},
		{
			ref("healer/Day 9/Child_s pose.mp4"),
			ref("healer/Day 9/Happy baby pose.mp4"),
			ref("healer/Day 9/Supine twist.mp4"),
		},
		{
			ref("healer/Day 10/Squat to chair.mp4"),
			ref("healer/Day 10/Pilates bridge march.mp4"),
			ref("healer/Day 10/Wall sit.mp4"),
		},
		{
			ref("healer/Day 11/Side plank knees (left).mp4"),
			ref("healer/Day 11/Side plank knees (right).mp4"),
			ref("healer/Day 11/Standing side bend.mp4"),
		},
		{
			ref("healer/Day 12/Modified bear hold.mp4"),
			ref("healer/Day 12/Glute bridge hold.mp4"),
		},
		nil,
		{
			ref("healer/Day 14/Warrior II pose (left).mp4"),
			ref("healer/Day 14/Warrior II pose (right).mp4"),
			ref("healer/Day 14/Bear crawl.mp4"),
		},
		{
			ref("healer/Day 15/Downward dog.mp4"),
			ref("healer/Day 15/Cobra pose.mp4"),
			ref("healer/Day 15/Diaphragmatic breathing.mp4"),
		},
		{
			ref("healer/Day 16/Full flow review.mp4"),
			ref("healer/Day 16/Dead bug.mp4"),
		},
	},
	profile.TrackDrySeal: {
		{ref("drySeal/Day 1/Pelvic floor breathing.mp4"), ref("drySeal/Day 1/Quick flicks.mp4")},
		{ref("drySeal/Day 2/Long holds.mp4"), ref("drySeal/Day 2/Bridge pose.mp4")},
		{ref("drySeal/Day 3/The knack.mp4"), ref("drySeal/Day 3/Adductor squeeze.mp4")},
		{ref("drySeal/Day 4/Elevator lifts.mp4"), ref("drySeal/Day 4/Sit to stand.mp4")},
		{ref("drySeal/Day 5/Cough brace.mp4"), ref("drySeal/Day 5/Squat hold.mp4")},
		{ref("drySeal/Day 6/Step ups (left).mp4"), ref("drySeal/Day 6/Step ups (right).mp4")},
		{ref("drySeal/Day 7/Jump prep.mp4"), ref("drySeal/Day 7/Full seal review.mp4")},
	},
	profile.TrackRelease: {
		{ref("release/Day 1/Reverse kegel breathing.mp4"), ref("release/Day 1/Happy baby pose.mp4")},
		{ref("release/Day 2/Butterfly stretch.mp4")},
		nil,
		{ref("release/Day 4/Pigeon pose (left).mp4"), ref("release/Day 4/Pigeon pose (right).mp4")},
		nil,
		{ref("release/Day 6/Legs up the wall.mp4")},
		nil,
	},
}, []string{
	ref("decompression/Child_s pose.mp4"),
	ref("decompression/Supine twist.mp4"),
	ref("decompression/Legs up the wall.mp4"),
	ref("decompression/Cat cow.mp4"),
	ref("decompression/Diaphragmatic breathing.mp4"),
})

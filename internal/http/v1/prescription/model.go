package prescription

import (
	rx "github.com/janisto/corerestore/internal/service/prescription"
)

// Prescription is today's plan.
type Prescription struct {
	Date                     string      `json:"date"                     doc:"Calendar date"                              example:"2024-01-17"`
	Track                    string      `json:"track"                    doc:"Active track"                               example:"healer"`
	DayNumber                int         `json:"dayNumber"                doc:"Day within the track (1-based)"             example:"1"`
	Phase                    string      `json:"phase"                    doc:"Phase name"                                 example:"Neuromuscular Awakening"`
	Rationale                string      `json:"rationale"                doc:"Why this phase"`
	Minutes                  int         `json:"minutes"                  doc:"Recommended minutes"                        example:"15"`
	Pressure                 string      `json:"pressure"                 doc:"Pressure label"                             example:"Low"`
	Media                    []MediaItem `json:"media"                    doc:"Ordered session videos, empty when none are authored"`
	HasContent               bool        `json:"hasContent"               doc:"False when no workout content is available" example:"true"`
	CycleKey                 string      `json:"cycleKey"                 doc:"Start date of the current cycle"            example:"2024-01-17"`
	RequiresCheckinToProceed bool        `json:"requiresCheckinToProceed" doc:"Whether a milestone check-in gate applies" example:"false"`
	CheckinMilestoneDay      int         `json:"checkinMilestoneDay"      doc:"Milestone day of the applicable gate"       example:"7"`
	CheckinDone              bool        `json:"checkinDone"              doc:"Whether that check-in is recorded"          example:"false"`
}

// MediaItem is one session video.
type MediaItem struct {
	Ref   string `json:"ref"   doc:"Opaque media reference"`
	Title string `json:"title" doc:"Display title" example:"Rotation Stretch — Left"`
}

func toHTTPPrescription(p rx.Prescription) Prescription {
	media := make([]MediaItem, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, MediaItem{Ref: m.Ref, Title: m.Title})
	}
	return Prescription{
		Date:                     p.Date,
		Track:                    string(p.Track),
		DayNumber:                p.DayNumber,
		Phase:                    p.Phase,
		Rationale:                p.Rationale,
		Minutes:                  p.Minutes,
		Pressure:                 string(p.Pressure),
		Media:                    media,
		HasContent:               p.HasContent,
		CycleKey:                 p.CycleKey,
		RequiresCheckinToProceed: p.RequiresCheckinToProceed,
		CheckinMilestoneDay:      p.CheckinMilestoneDay,
		CheckinDone:              p.CheckinDone,
	}
}

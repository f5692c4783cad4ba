package profile

// ProfileCreateOutput for POST /profile (201 Created)
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profile"`
	Body     Profile
}

// ProfileOutput is returned by every other profile operation.
type ProfileOutput struct {
	Body Profile
}

// HistoryData is one page of a history log, newest first.
type HistoryData[T any] struct {
	Items []T `json:"items" doc:"Entries on this page, newest first"`
	Total int `json:"total" doc:"Total entries in the log"          example:"12"`
}

// HistoryOutput carries a history page plus RFC 8288 pagination links.
type HistoryOutput[T any] struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body HistoryData[T]
}

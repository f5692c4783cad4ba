package pagination

// DefaultLimit is the page size used when the client does not ask for one.
const DefaultLimit = 20

// Params embeds into Huma input structs for pagination.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from a previous Link header"`
	Limit  int    `query:"limit"  doc:"Maximum entries per page"                              default:"20" minimum:"1" maximum:"100"`
}

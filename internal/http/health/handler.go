package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/janisto/corerestore/internal/platform/timeutil"
)

// Response is the payload for the health endpoint. Date and TimeZone tell
// clients which calendar day the server resolves "today" to by default.
type Response struct {
	Status   string `json:"status"`
	Date     string `json:"date"`
	TimeZone string `json:"timeZone"`
}

// NewHandler returns a plain HTTP handler for the health check endpoint.
func NewHandler(loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{
			Status:   "healthy",
			Date:     timeutil.Today(loc),
			TimeZone: loc.String(),
		})
	}
}

package pagination

import (
	"net/url"
	"strings"
)

// BuildLinkHeader renders an RFC 8288 Link header with next and prev
// relations. query is copied; the cursor parameter is set per relation.
func BuildLinkHeader(basePath string, query url.Values, next, prev string) string {
	var b strings.Builder
	for _, rel := range [...]struct{ name, cursor string }{{"next", next}, {"prev", prev}} {
		if rel.cursor == "" {
			continue
		}
		q := cloneValues(query)
		q.Set("cursor", rel.cursor)
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("<" + basePath + "?" + q.Encode() + `>; rel="` + rel.name + `"`)
	}
	return b.String()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

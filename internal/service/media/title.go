package media

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackTitle is returned when nothing readable survives normalization.
const FallbackTitle = "Exercise"

type substitution struct {
	re   *regexp.Regexp
	with string
}

func sub(pattern, with string) substitution {
	return substitution{re: regexp.MustCompile(`(?i)` + pattern), with: with}
}

// Applied in order. Specific pose names come before the generic "pose"
// cleanup, and side labels before title casing.
var substitutions = []substitution{
	sub(`\btupler\b`, ""),
	sub(`\bmutu\b`, ""),
	sub(`\bpilates\b`, ""),
	sub(`\brevolved\s+triangle\b`, "rotation stretch"),
	sub(`\bchild(?:'s|’s|\s+s|s)?\s+pose\b`, "back decompression stretch"),
	sub(`\bhappy\s+baby(?:\s+pose)?\b`, "hip release stretch"),
	sub(`\bcat\s+cow\b`, "spine mobility flow"),
	sub(`\bdownward\s+dog\b`, "full body lengthener"),
	sub(`\bcobra(?:\s+pose)?\b`, "chest opener"),
	sub(`\bpigeon(?:\s+pose)?\b`, "hip opener"),
	sub(`\bwarrior\s+ii(?:\s+pose)?\b`, "standing lunge hold"),
	sub(`\bmountain\s+pose\b`, "standing alignment"),
	sub(`\bbridge\s+pose\b`, "glute bridge"),
	sub(`\s*\(\s*left\s*\)`, " — left"),
	sub(`\s*\(\s*right\s*\)`, " — right"),
	sub(`\bpose\b`, ""),
}

var spaces = regexp.MustCompile(`\s+`)

var titleCaser = cases.Title(language.English)

// Title converts a media reference into a neutral exercise title. It never
// fails; unreadable input yields FallbackTitle.
func Title(ref string) string {
	s, _, _ := strings.Cut(ref, "?")
	s, _, _ = strings.Cut(s, "#")
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	s = s[strings.LastIndex(s, "/")+1:]
	s = strings.TrimSuffix(s, path.Ext(s))
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "_", " ")

	for _, r := range substitutions {
		s = r.re.ReplaceAllString(s, r.with)
	}

	s = strings.TrimSpace(spaces.ReplaceAllString(s, " "))
	s = strings.Trim(s, "—- ")
	if s == "" {
		return FallbackTitle
	}
	return titleCaser.String(s)
}

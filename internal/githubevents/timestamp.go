package githubevents

import (
	"log"
	"strings"
	"time"
)

// CanonicalTimeLayout is the fixed second-precision UTC format every stored
// Event timestamp uses. It is zero-padded and fixed-width, which is what
// makes lexicographic cursor comparisons on the feed valid.
const CanonicalTimeLayout = "2006-01-02T15:04:05Z"

// timestampLayouts are tried in order when parsing upstream timestamps.
// GitHub mixes RFC 3339 with offsets, plain naive date-times, and the
// occasional space-separated form depending on the payload field.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// NormalizeTimestamp converts an upstream timestamp string into the canonical
// UTC form. It never fails: anything unparseable resolves to the current UTC
// instant so a bad timestamp cannot block event storage. Strings without an
// offset are assumed to already be UTC. Sub-second precision is dropped.
func NormalizeTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC().Format(CanonicalTimeLayout)
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return parsed.UTC().Format(CanonicalTimeLayout)
	}

	log.Printf("githubevents: unparseable timestamp %q, using current instant", raw)
	return time.Now().UTC().Format(CanonicalTimeLayout)
}

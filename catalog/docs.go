package catalog

import (
	"regexp"
	"sort"
)

// Documentation declares log sources inside fenced code blocks, in either
// quoted JSON form ("source": "apache") or bare YAML form (source: apache).
var (
	// One-or-more backtick runs, non-greedy, spanning multiple lines.
	// Matches both inline code and fenced blocks.
	fencedSpanRe = regexp.MustCompile("(?s)`+(.*?)`+")

	// A source key in either form; the identifier is the capture. The
	// leading \b keeps keys that merely end in "source" (resource,
	// datasource) from matching.
	sourceKeyRe = regexp.MustCompile(`\b"?source"?\s*:\s*"?([a-zA-Z0-9_-]+)"?`)
)

// ExtractSources returns the distinct log-source identifiers declared in the
// documentation text. All fenced spans are isolated first; source keys are
// matched within the concatenation of the spans. The result is deduplicated
// and sorted so iteration order never leaks into the report. Zero matches is
// valid and means "no log source documented".
func ExtractSources(doc string) []string {
	var spans []byte
	for _, m := range fencedSpanRe.FindAllStringSubmatch(doc, -1) {
		spans = append(spans, m[1]...)
		// Keep spans from running together at their boundary.
		spans = append(spans, '\n')
	}

	seen := make(map[string]struct{})
	for _, m := range sourceKeyRe.FindAllSubmatch(spans, -1) {
		seen[string(m[1])] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}

	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

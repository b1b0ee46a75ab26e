package reconcile

import (
	"encoding/json"
	"sort"

	"github.com/obslab/pipecheck/errors"
)

// Report maps each integration's directory name to its ordered findings.
// Integrations with zero findings are omitted, so an empty report means a
// fully consistent catalog. The report is the sole machine-readable
// artifact; a CI consumer fails the build when it is non-empty.
type Report map[string][]string

// Empty reports whether the catalog produced no findings.
func (r Report) Empty() bool {
	return len(r) == 0
}

// Integrations returns the flagged integration names in sorted order.
func (r Report) Integrations() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JSON renders the report as an indented JSON object. encoding/json emits
// map keys in sorted order, so two runs over the same catalog snapshot
// produce byte-identical output.
func (r Report) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal report")
	}
	return append(out, '\n'), nil
}

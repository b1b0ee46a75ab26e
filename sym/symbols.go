// Package sym defines canonical symbols for pipecheck CLI output.
// These symbols are stable across CLI output and documentation.
package sym

// Status markers used in command output.
const (
	OK      = "✓" // consistent — no findings
	Finding = "✗" // inconsistency finding
	Watch   = "∞" // watch mode — continuous revalidation
	Pipe    = "⤳" // pipeline binding
)

package logger

// Standard field names for consistent structured logging across pipecheck.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Catalog entities
	FieldIntegration = "integration"
	FieldPipeline    = "pipeline"
	FieldManifest    = "manifest"
	FieldSource      = "source"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
	FieldRoot = "root"

	// Counts and sizes
	FieldCount    = "count"
	FieldFindings = "findings"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

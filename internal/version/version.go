package version

var (
	Revision = "unknown" // Git commit hash
	Version  = "unknown" // Numeric version

	// for structured log lines identifying the build
	LogFields = map[string]any{
		"revision": Revision,
		"version":  Version,
	}
)

package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultTimezone is the civil timezone used for every "today"
	// comparison, regardless of the caller's locale.
	DefaultTimezone = "Africa/Cairo"
)

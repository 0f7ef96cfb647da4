package config

// this holds the resolved configuration values from CLI
var (
	SnapshotFile string // path to the season snapshot file
	SettingsFile string // optional YAML file overriding season settings
	Season       int    // season to operate on (0 = derive from snapshot)
	OutputFormat string // text vs json
	LogLevel     string // sets the log level (zap log level values)
	LogFormat    string // text vs json
	LogFilter    string // zapfilter rules for namespaced loggers
)

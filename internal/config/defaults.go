package config

const (
	defaultHistoryDir     = "~/.local/share/reseed"
	defaultHistoryEnabled = true
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultTrackers is the built-in replacement set: open public UDP trackers
// that accept any torrent without registration.
var defaultTrackers = []string{
	"udp://tracker.opentrackr.org:1337",
	"udp://tracker.coppersurfer.tk:6969",
	"udp://tracker.leechers-paradise.org:6969",
	"udp://zer0day.ch:1337",
	"udp://explodie.org:6969",
}

// Default returns a Config populated with repository defaults. Webseeds
// default to empty, which removes any url-list the source carries.
func Default() Config {
	return Config{
		Trackers: append([]string(nil), defaultTrackers...),
		Webseeds: nil,
		Output: Output{
			Overwrite: false,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
			Dir:     defaultHistoryDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package history

import "time"

// Outcome describes how a journaled file was handled.
type Outcome string

const (
	// OutcomeConverted marks a torrent that was rewritten and saved.
	OutcomeConverted Outcome = "converted"
	// OutcomeAlreadyPublic marks an input that carried no private flag and
	// was skipped (or force-converted) during a batch run.
	OutcomeAlreadyPublic Outcome = "already-public"
)

// Entry is one journal row.
type Entry struct {
	ID              string
	CreatedAt       time.Time
	SourcePath      string
	DestinationPath string
	Title           string
	InfohashBefore  string
	InfohashAfter   string
	Outcome         Outcome
	Trackers        int
	Webseeds        int
}

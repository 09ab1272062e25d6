// Package rewrite turns a private torrent document into a public one. It
// strips info.private, replaces the tracker set, and replaces the webseed
// list, in that fixed order. The edits touch nothing else, so every other
// field of the document survives re-encoding byte for byte.
package rewrite

import (
	"errors"

	"reseed/internal/bencode"
	"reseed/internal/metainfo"
)

// ErrAlreadyPublic signals that a source torrent had no private flag to
// strip. The pipeline itself never returns it: callers that require a
// private source check Result.WasPrivate and use this sentinel to classify
// the refusal.
var ErrAlreadyPublic = errors.New("torrent is already public")

// Options selects the replacement tracker and webseed sets. Both lists are
// passed explicitly; the pipeline reads no global state.
type Options struct {
	Trackers []string
	Webseeds []string
}

// Result summarizes one pipeline run.
type Result struct {
	// WasPrivate reports whether info.private was present before the run.
	WasPrivate bool
	// Trackers and Webseeds count the replacement entries written.
	Trackers int
	Webseeds int
}

// Apply runs the full pipeline on doc: StripPrivate, SwapTrackers,
// SwapWebseeds. On error the document may be partially edited and should
// be discarded.
func Apply(doc *metainfo.Document, opts Options) (Result, error) {
	wasPrivate, err := StripPrivate(doc)
	if err != nil {
		return Result{}, err
	}
	SwapTrackers(doc, opts.Trackers)
	if err := SwapWebseeds(doc, opts.Webseeds); err != nil {
		return Result{}, err
	}
	return Result{
		WasPrivate: wasPrivate,
		Trackers:   len(opts.Trackers),
		Webseeds:   len(opts.Webseeds),
	}, nil
}

// StripPrivate removes info.private and reports whether it was present.
// Running it again on the same document returns false.
func StripPrivate(doc *metainfo.Document) (bool, error) {
	return doc.RemovePrivate()
}

// SwapTrackers replaces the document's tracker set with trackers.
//
// An empty list removes announce and announce-list entirely. Otherwise
// announce becomes trackers[0], and when more than one tracker is given,
// announce-list becomes one single-entry tier per tracker, in order. With
// exactly one tracker any pre-existing announce-list is left alone.
func SwapTrackers(doc *metainfo.Document, trackers []string) {
	if len(trackers) == 0 {
		doc.RemoveAnnounce()
		doc.RemoveAnnounceList()
		return
	}
	doc.SetAnnounce([]byte(trackers[0]))
	if len(trackers) > 1 {
		tiers := make(bencode.List, len(trackers))
		for i, tracker := range trackers {
			tiers[i] = bencode.List{bencode.String(tracker)}
		}
		doc.SetAnnounceList(tiers)
	}
}

// SwapWebseeds replaces url-list with webseeds.
//
// An empty list removes url-list. For a multi-file torrent the entries are
// written verbatim, following the webseed convention that each URL points
// at a directory the client resolves file paths against. For a single-file
// torrent each entry is the URL with info.name appended as raw bytes, no
// separator inserted, so callers control whether a trailing slash is part
// of the URL.
func SwapWebseeds(doc *metainfo.Document, webseeds []string) error {
	if len(webseeds) == 0 {
		doc.RemoveURLList()
		return nil
	}

	multi, err := doc.IsMultiFile()
	if err != nil {
		return err
	}

	urls := make(bencode.List, len(webseeds))
	if multi {
		for i, seed := range webseeds {
			urls[i] = bencode.String(seed)
		}
	} else {
		name, err := doc.Name()
		if err != nil {
			return err
		}
		for i, seed := range webseeds {
			urls[i] = bencode.String(seed + string(name))
		}
	}
	doc.SetURLList(urls)
	return nil
}

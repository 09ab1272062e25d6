package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reseed/internal/bencode"
	"reseed/internal/config"
	"reseed/internal/metainfo"
	"reseed/internal/textutil"
)

// torrentView is the document-model projection rendered by show. Trackers
// holds the effective tracker set: the flattened announce-list when one is
// present, otherwise the single announce URL.
type torrentView struct {
	Path         string     `json:"path"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Infohash     string     `json:"infohash"`
	Private      bool       `json:"private"`
	MultiFile    bool       `json:"multi_file"`
	Trackers     []string   `json:"trackers,omitempty"`
	Announce     string     `json:"announce,omitempty"`
	AnnounceList [][]string `json:"announce_list,omitempty"`
	Webseeds     []string   `json:"webseeds,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "show <file>",
		Short:       "Display torrent metadata",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read torrent: %w", err)
			}
			doc, err := metainfo.Parse(data)
			if err != nil {
				return err
			}
			view, err := buildTorrentView(path, doc)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, view)
			}

			layout := "single-file"
			if view.MultiFile {
				layout = "multi-file"
			}
			rows := [][]string{
				{"Name", view.Name},
				{"Title", view.Title},
				{"Infohash", view.Infohash},
				{"Private", yesNo(view.Private)},
				{"Layout", layout},
				{"Trackers", joinOrNone(view.Trackers)},
				{"Webseeds", joinOrNone(view.Webseeds)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	return cmd
}

func buildTorrentView(path string, doc *metainfo.Document) (*torrentView, error) {
	name, err := doc.Name()
	if err != nil {
		return nil, err
	}
	hash, err := doc.InfoHash()
	if err != nil {
		return nil, err
	}
	_, private, err := doc.Private()
	if err != nil {
		return nil, err
	}
	multi, err := doc.IsMultiFile()
	if err != nil {
		return nil, err
	}

	view := &torrentView{
		Path:         path,
		Name:         string(name),
		Title:        textutil.DisplayTitle(name),
		Infohash:     metainfo.HashString(hash),
		Private:      private,
		MultiFile:    multi,
		AnnounceList: announceTiers(doc),
		Webseeds:     webseedList(doc),
	}
	if announce, err := doc.Announce(); err == nil {
		view.Announce = string(announce)
	}
	view.Trackers = effectiveTrackers(view.Announce, view.AnnounceList)
	return view, nil
}

// announceTiers projects announce-list into plain strings. Entries of
// unexpected shape are dropped rather than failing the display.
func announceTiers(doc *metainfo.Document) [][]string {
	tiers, err := doc.AnnounceList()
	if err != nil {
		return nil
	}
	view := make([][]string, 0, len(tiers))
	for _, tierValue := range tiers {
		tier, ok := tierValue.(bencode.List)
		if !ok {
			continue
		}
		entries := make([]string, 0, len(tier))
		for _, entry := range tier {
			if s, ok := entry.(bencode.String); ok {
				entries = append(entries, string(s))
			}
		}
		if len(entries) > 0 {
			view = append(view, entries)
		}
	}
	if len(view) == 0 {
		return nil
	}
	return view
}

// webseedList projects url-list, accepting both the list form and the bare
// string form seen in the wild.
func webseedList(doc *metainfo.Document) []string {
	v, err := doc.URLList()
	if err != nil {
		return nil
	}
	switch urls := v.(type) {
	case bencode.String:
		return []string{string(urls)}
	case bencode.List:
		seeds := make([]string, 0, len(urls))
		for _, entry := range urls {
			if s, ok := entry.(bencode.String); ok {
				seeds = append(seeds, string(s))
			}
		}
		if len(seeds) == 0 {
			return nil
		}
		return seeds
	}
	return nil
}

func effectiveTrackers(announce string, tiers [][]string) []string {
	if len(tiers) == 0 {
		if announce == "" {
			return nil
		}
		return []string{announce}
	}
	var flat []string
	for _, tier := range tiers {
		flat = append(flat, tier...)
	}
	return flat
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, "\n")
}

package model

import (
	"regexp"
	"strings"
	"time"
)

var invalidPathChars = regexp.MustCompile(`[^a-zA-Z0-9_ ]+`)

// Item is a single episode extracted from a feed, normalized across providers.
type Item struct {
	Title       string
	Description string
	Artist      string
	PubDate     time.Time
	// PageURL is a HTML page that describes the episode
	PageURL string
	// CoverURL is an optional image to use as album art
	CoverURL string
	// AudioURL is either a direct link to the media file or a page URL
	// that has to be resolved by youtube-dl
	AudioURL string
	// Extension of the file on disk (without dot)
	Extension string
}

// CleanTitle returns the title without a leading "{Artist} - " prefix.
func (i *Item) CleanTitle() string {
	return strings.TrimPrefix(i.Title, i.Artist+" - ")
}

// FileName returns the clean title stripped of anything that's not safe to use on disk.
func (i *Item) FileName() string {
	return Sanitize(i.CleanTitle())
}

// Sanitize removes every character outside of [A-Za-z0-9_ ].
func Sanitize(name string) string {
	return invalidPathChars.ReplaceAllString(name, "")
}

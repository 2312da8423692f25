package models

// StreamCardColor is the accent color of a live notification card.
const StreamCardColor = 6570404

// BlankField keeps the card layout aligned when no community invite is
// configured for the channel.
const BlankField = "** **"

type StreamCardField struct {
	Name   string
	Value  string
	Inline bool
}

// StreamCard is the rendered notification payload for one live session.
type StreamCard struct {
	Announcement string // plain-text line above the card
	Title        string
	URL          string
	Color        int
	AuthorName   string
	AuthorIcon   string
	AuthorURL    string
	Fields       []StreamCardField
	Footer       string
	ImageURL     string // large preview, carries a cache-busting query parameter
	ThumbnailURL string
}

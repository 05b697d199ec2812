package ytcomments

import "time"

// Video is one search hit enriched with its engagement counts.
type Video struct {
	ID          string
	Title       string
	PublishedAt time.Time
	Channel     string
	Views       int64
	Likes       int64
	Comments    int64
}

// VideoStats holds the counters returned by the statistics lookup.
// The zero value is what callers get when the lookup fails.
type VideoStats struct {
	Views    int64
	Likes    int64
	Comments int64
}

// Comment is a single row of the flat comment table. Top-level comments have
// an empty ParentID; replies carry the id of the thread they belong to.
type Comment struct {
	VideoID     string
	ID          string
	Author      string
	Text        string
	Likes       int64
	PublishedAt time.Time
	IsReply     bool
	ParentID    string
}

// CleanReport carries the row counts before and after Clean.
type CleanReport struct {
	Before int
	After  int
}

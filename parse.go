package ytcomments

import (
	"time"

	"google.golang.org/api/youtube/v3"
)

// parseTime reads an RFC 3339 timestamp from the API. Missing or malformed
// values become the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// searchResultVideoID returns the video id of a search hit, or "" when the
// hit is not a video.
func searchResultVideoID(item *youtube.SearchResult) string {
	if item == nil || item.Id == nil {
		return ""
	}
	return item.Id.VideoId
}

// parseSearchResult converts a search hit to a Video without counts.
func parseSearchResult(item *youtube.SearchResult) Video {
	v := Video{ID: searchResultVideoID(item)}
	if item != nil && item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.PublishedAt = parseTime(item.Snippet.PublishedAt)
		v.Channel = item.Snippet.ChannelTitle
	}
	return v
}

// parseStats converts the statistics part of a video resource.
func parseStats(raw *youtube.VideoStatistics) VideoStats {
	if raw == nil {
		return VideoStats{}
	}
	return VideoStats{
		Views:    int64(raw.ViewCount),
		Likes:    int64(raw.LikeCount),
		Comments: int64(raw.CommentCount),
	}
}

// parseComment converts a comment resource. parentID is empty for
// top-level comments.
func parseComment(videoID, parentID string, raw *youtube.Comment) Comment {
	c := Comment{
		VideoID:  videoID,
		IsReply:  parentID != "",
		ParentID: parentID,
	}
	if raw == nil {
		return c
	}
	c.ID = raw.Id
	if raw.Snippet != nil {
		c.Author = raw.Snippet.AuthorDisplayName
		c.Text = raw.Snippet.TextDisplay
		c.Likes = raw.Snippet.LikeCount
		c.PublishedAt = parseTime(raw.Snippet.PublishedAt)
	}
	return c
}

// threadTopLevel returns the top-level comment of a thread and its reported
// reply count. ok is false when the thread carries no comment.
func threadTopLevel(thread *youtube.CommentThread) (top *youtube.Comment, replies int64, ok bool) {
	if thread == nil || thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
		return nil, 0, false
	}
	return thread.Snippet.TopLevelComment, thread.Snippet.TotalReplyCount, true
}

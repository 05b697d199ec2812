package ytcomments

import (
	"context"
	"fmt"
)

// GetComments walks every comment thread of a video. Each top-level comment
// is followed directly by its replies. A failed page ends the crawl for this
// video; what was gathered so far is returned with the error.
func (s *Scraper) GetComments(ctx context.Context, videoID string) ([]Comment, error) {
	if videoID == "" {
		return nil, fmt.Errorf("get comments: video id is required")
	}

	var comments []Comment
	pageToken := ""

	for {
		call := s.service.CommentThreads.List([]string{"snippet", "replies"}).
			VideoId(videoID).
			MaxResults(commentPageSize).
			TextFormat("plainText").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return comments, fmt.Errorf("get comments for video %q: %w", videoID, classifyError(err))
		}

		for _, thread := range resp.Items {
			top, replyCount, ok := threadTopLevel(thread)
			if !ok {
				continue
			}
			comments = append(comments, parseComment(videoID, "", top))

			if replyCount > 0 {
				replies, err := s.GetReplies(ctx, videoID, thread.Id)
				if err != nil {
					s.log.Error().Err(err).Str("video_id", videoID).Str("comment_id", thread.Id).
						Msg("error getting replies")
				}
				comments = append(comments, replies...)
			}
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken

		if err := pause(ctx, s.delays.CommentPage); err != nil {
			return comments, err
		}
	}

	return comments, nil
}

// GetReplies walks all reply pages under one top-level comment. Every
// returned Comment is a reply whose ParentID is parentID.
func (s *Scraper) GetReplies(ctx context.Context, videoID, parentID string) ([]Comment, error) {
	if parentID == "" {
		return nil, fmt.Errorf("get replies: parent id is required")
	}

	var replies []Comment
	pageToken := ""

	for {
		call := s.service.Comments.List([]string{"snippet"}).
			ParentId(parentID).
			MaxResults(commentPageSize).
			TextFormat("plainText").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return replies, fmt.Errorf("get replies for comment %q: %w", parentID, classifyError(err))
		}

		for _, raw := range resp.Items {
			if raw == nil {
				continue
			}
			replies = append(replies, parseComment(videoID, parentID, raw))
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken

		if err := pause(ctx, s.delays.ReplyPage); err != nil {
			return replies, err
		}
	}

	return replies, nil
}

package ytcomments

import (
	"context"
	"fmt"
)

// Collect searches for up to maxVideos videos about keyword and crawls the
// comments of each one in turn. Failures of a single video are logged and
// skipped so the rest of the run keeps its data. Only cancellation of ctx
// stops the run early; the data gathered until then is still returned.
func (s *Scraper) Collect(ctx context.Context, keyword string, maxVideos int) ([]Video, []Comment, error) {
	if keyword == "" {
		return nil, nil, fmt.Errorf("collect: keyword is required")
	}
	s.progressf("Searching for up to %d videos about '%s'...", maxVideos, keyword)

	videos, err := s.SearchVideos(ctx, keyword, maxVideos)
	if err != nil {
		if ctx.Err() != nil {
			return videos, nil, ctx.Err()
		}
		s.log.Error().Err(err).Str("keyword", keyword).Msg("error during video search")
	}
	s.progressf("Found %d videos", len(videos))

	s.progressf("\nCollecting comments...")
	var all []Comment
	for i, v := range videos {
		s.progressf("Getting comments from video %d/%d: %s", i+1, len(videos), v.Title)

		comments, err := s.GetComments(ctx, v.ID)
		if err != nil {
			if ctx.Err() != nil {
				return videos, append(all, comments...), ctx.Err()
			}
			s.log.Error().Err(err).Str("video_id", v.ID).Msg("error getting comments")
		}
		s.progressf("Found %d comments (including replies)", len(comments))
		all = append(all, comments...)

		if err := pause(ctx, s.delays.Video); err != nil {
			return videos, all, err
		}
	}

	return videos, all, nil
}

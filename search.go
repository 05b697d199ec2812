package ytcomments

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

// SearchVideos pages through keyword search results until maxResults videos
// are collected or the provider runs out of pages. Each hit is enriched with
// its statistics. A failed page stops the search; the videos collected so far
// are returned together with the error.
func (s *Scraper) SearchVideos(ctx context.Context, keyword string, maxResults int) ([]Video, error) {
	if keyword == "" {
		return nil, fmt.Errorf("search videos: keyword is required")
	}
	if maxResults <= 0 {
		return nil, nil
	}

	var videos []Video
	pageToken := ""

	for len(videos) < maxResults {
		resp, err := s.fetchSearchPage(ctx, keyword, pageToken, min(searchPageSize, maxResults-len(videos)))
		if err != nil {
			return videos, fmt.Errorf("search videos %q: %w", keyword, err)
		}

		for _, item := range resp.Items {
			id := searchResultVideoID(item)
			if id == "" {
				s.log.Warn().Str("keyword", keyword).Msg("search hit without video id, skipping")
				continue
			}

			v := parseSearchResult(item)
			stats := s.GetVideoDetails(ctx, id)
			v.Views, v.Likes, v.Comments = stats.Views, stats.Likes, stats.Comments
			videos = append(videos, v)

			if len(videos) >= maxResults {
				break
			}
			if err := pause(ctx, s.delays.Item); err != nil {
				return videos, err
			}
		}

		if resp.NextPageToken == "" || len(videos) >= maxResults {
			break
		}
		pageToken = resp.NextPageToken

		s.progressf("Retrieved %d videos so far...", len(videos))
		if err := pause(ctx, s.delays.SearchPage); err != nil {
			return videos, err
		}
	}

	if len(videos) > maxResults {
		videos = videos[:maxResults]
	}
	return videos, nil
}

func (s *Scraper) fetchSearchPage(ctx context.Context, keyword, pageToken string, size int) (*youtube.SearchListResponse, error) {
	call := s.service.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("video").
		MaxResults(int64(size)).
		Context(ctx)
	if s.language != "" {
		call = call.RelevanceLanguage(s.language)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classifyError(err)
	}
	return resp, nil
}

// GetVideoDetails looks up view, like and comment counts for one video.
// It never fails: any error is logged and zero counts are returned.
func (s *Scraper) GetVideoDetails(ctx context.Context, videoID string) VideoStats {
	stats, err := s.fetchVideoStats(ctx, videoID)
	if err != nil {
		s.log.Error().Err(err).Str("video_id", videoID).Msg("error getting video details")
		return VideoStats{}
	}
	return stats
}

func (s *Scraper) fetchVideoStats(ctx context.Context, videoID string) (VideoStats, error) {
	resp, err := s.service.Videos.List([]string{"statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return VideoStats{}, fmt.Errorf("get video details %q: %w", videoID, classifyError(err))
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return VideoStats{}, fmt.Errorf("%w: video %q", ErrNotFound, videoID)
	}
	if resp.Items[0].Statistics == nil {
		return VideoStats{}, fmt.Errorf("%w: video %q has no statistics", ErrInvalidResponse, videoID)
	}
	return parseStats(resp.Items[0].Statistics), nil
}

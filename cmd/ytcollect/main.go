package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/RavensCloud/ytcomments"
	"github.com/RavensCloud/ytcomments/internal/config"
	"github.com/RavensCloud/ytcomments/internal/logging"
)

func main() {
	cfg, err := config.Load(true)
	if err != nil {
		l := logging.New(os.Stderr, "info")
		l.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := ytcomments.New(ctx, cfg.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create scraper")
	}
	s.WithDelays(cfg.Delays).WithLanguage(cfg.Language).WithLogger(log).WithProgress(os.Stdout)

	if cfg.Proxy != "" {
		if err := s.SetProxy(cfg.Proxy); err != nil {
			log.Fatal().Err(err).Msg("set proxy")
		}
	}

	videos, comments, err := s.Collect(ctx, cfg.Keyword, cfg.MaxVideos)
	if err != nil {
		// Interrupted runs keep nothing on disk.
		log.Fatal().Err(err).Msg("collect")
	}

	if err := ytcomments.WriteVideosFile(cfg.VideosPath(), videos); err != nil {
		log.Fatal().Err(err).Str("path", cfg.VideosPath()).Msg("write videos")
	}
	fmt.Printf("\nVideo data saved: (%d videos)\n", len(videos))

	if err := ytcomments.WriteCommentsFile(cfg.CommentsPath(), comments); err != nil {
		log.Fatal().Err(err).Str("path", cfg.CommentsPath()).Msg("write comments")
	}
	fmt.Printf("Comments data saved: (%d comments)\n", len(comments))
}

package main

import (
	"fmt"
	"os"

	"github.com/RavensCloud/ytcomments"
	"github.com/RavensCloud/ytcomments/internal/config"
	"github.com/RavensCloud/ytcomments/internal/logging"
)

func main() {
	cfg, err := config.Load(false)
	if err != nil {
		l := logging.New(os.Stderr, "info")
		l.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	comments, err := ytcomments.ReadCommentsFile(cfg.CommentsPath())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CommentsPath()).Msg("read comments")
	}
	fmt.Printf("Total comments before cleaning: %d\n", len(comments))

	cleaned, report := ytcomments.Clean(comments)

	if err := ytcomments.WriteCommentsFile(cfg.CleanedPath(), cleaned); err != nil {
		log.Fatal().Err(err).Str("path", cfg.CleanedPath()).Msg("write cleaned comments")
	}
	fmt.Printf("Total comments after cleaning: %d\n", report.After)
}

// Package config loads run settings from .env, an optional config.yaml and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/RavensCloud/ytcomments"
)

var (
	ErrMissingAPIKey = errors.New("config: YOUTUBE_API_KEY must be set")
	ErrInvalidDelay  = errors.New("config: delays must be positive")
)

// Config holds everything the two binaries need.
type Config struct {
	APIKey       string
	Keyword      string
	MaxVideos    int
	Language     string
	Proxy        string
	LogLevel     string
	OutputDir    string
	VideosFile   string
	CommentsFile string
	CleanedFile  string
	Delays       ytcomments.Delays
}

// VideosPath is where the raw video table is written.
func (c *Config) VideosPath() string { return filepath.Join(c.OutputDir, c.VideosFile) }

// CommentsPath is where the raw comment table is written.
func (c *Config) CommentsPath() string { return filepath.Join(c.OutputDir, c.CommentsFile) }

// CleanedPath is where the cleaned comment table is written.
func (c *Config) CleanedPath() string { return filepath.Join(c.OutputDir, c.CleanedFile) }

// env maps config keys to the environment variables that override them.
var env = map[string]string{
	"api_key":            "YOUTUBE_API_KEY",
	"keyword":            "YT_KEYWORD",
	"max_videos":         "YT_MAX_VIDEOS",
	"language":           "YT_LANGUAGE",
	"proxy":              "YT_PROXY",
	"log_level":          "YT_LOG_LEVEL",
	"output_dir":         "YT_OUTPUT_DIR",
	"videos_file":        "YT_VIDEOS_FILE",
	"comments_file":      "YT_COMMENTS_FILE",
	"cleaned_file":       "YT_CLEANED_FILE",
	"delay.item":         "YT_DELAY_ITEM",
	"delay.search_page":  "YT_DELAY_SEARCH_PAGE",
	"delay.comment_page": "YT_DELAY_COMMENT_PAGE",
	"delay.reply_page":   "YT_DELAY_REPLY_PAGE",
	"delay.video":        "YT_DELAY_VIDEO",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("keyword", "Makan Bergizi Gratis")
	v.SetDefault("max_videos", 100)
	v.SetDefault("language", "id")
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "data")
	v.SetDefault("videos_file", "yt_mbg_videos.csv")
	v.SetDefault("comments_file", "yt_mbg_comments.csv")
	v.SetDefault("cleaned_file", "yt_mbg_comments_cleaned.csv")
	v.SetDefault("delay.item", ytcomments.DefaultDelays.Item)
	v.SetDefault("delay.search_page", ytcomments.DefaultDelays.SearchPage)
	v.SetDefault("delay.comment_page", ytcomments.DefaultDelays.CommentPage)
	v.SetDefault("delay.reply_page", ytcomments.DefaultDelays.ReplyPage)
	v.SetDefault("delay.video", ytcomments.DefaultDelays.Video)
}

// Load reads .env (if present) into the environment, then config.yaml from
// the working directory (if present), then environment overrides.
// requireKey makes a missing API key an error.
func Load(requireKey bool) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return load(viper.New(), []string{"."}, requireKey)
}

// loadDotEnv loads path into the environment. A missing file is not an error;
// an unreadable or malformed one is.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func load(v *viper.Viper, paths []string, requireKey bool) (*Config, error) {
	setDefaults(v)
	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", name, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	c := &Config{
		APIKey:       v.GetString("api_key"),
		Keyword:      v.GetString("keyword"),
		MaxVideos:    v.GetInt("max_videos"),
		Language:     v.GetString("language"),
		Proxy:        v.GetString("proxy"),
		LogLevel:     v.GetString("log_level"),
		OutputDir:    v.GetString("output_dir"),
		VideosFile:   v.GetString("videos_file"),
		CommentsFile: v.GetString("comments_file"),
		CleanedFile:  v.GetString("cleaned_file"),
		Delays: ytcomments.Delays{
			Item:        v.GetDuration("delay.item"),
			SearchPage:  v.GetDuration("delay.search_page"),
			CommentPage: v.GetDuration("delay.comment_page"),
			ReplyPage:   v.GetDuration("delay.reply_page"),
			Video:       v.GetDuration("delay.video"),
		},
	}

	if requireKey && c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if c.MaxVideos <= 0 {
		return nil, fmt.Errorf("config: max_videos must be positive, got %d", c.MaxVideos)
	}
	for name, d := range map[string]time.Duration{
		"item":         c.Delays.Item,
		"search_page":  c.Delays.SearchPage,
		"comment_page": c.Delays.CommentPage,
		"reply_page":   c.Delays.ReplyPage,
		"video":        c.Delays.Video,
	} {
		if d <= 0 {
			return nil, fmt.Errorf("%w: delay.%s = %v", ErrInvalidDelay, name, d)
		}
	}
	return c, nil
}

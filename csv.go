package ytcomments

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var (
	videoHeader   = []string{"video_id", "title", "published_at", "channel", "view_count", "like_count", "comment_count"}
	commentHeader = []string{"video_id", "comment_id", "author", "comment", "like_count", "published_at", "is_reply", "parent_id"}
)

// parseCount reads an integer cell. Whole floats such as "3.0" are accepted,
// since spreadsheet tools write counts that way once a column holds a blank.
func parseCount(v string) (int64, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(v, 64)
	if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, err
	}
	return int64(f), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// WriteVideos writes the video table, header first.
func WriteVideos(w io.Writer, videos []Video) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(videoHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, v := range videos {
		row := []string{
			v.ID,
			v.Title,
			formatTime(v.PublishedAt),
			v.Channel,
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Comments, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteComments writes a comment table, header first. It serves both the
// raw table and the cleaned one.
func WriteComments(w io.Writer, comments []Comment) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(commentHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range comments {
		row := []string{
			c.VideoID,
			c.ID,
			c.Author,
			c.Text,
			strconv.FormatInt(c.Likes, 10),
			formatTime(c.PublishedAt),
			strconv.FormatBool(c.IsReply),
			c.ParentID,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadComments parses a comment table written by WriteComments. Columns are
// located by header name, so extra or reordered columns are tolerated.
// Empty numeric and timestamp cells read as zero values.
func ReadComments(r io.Reader) ([]Comment, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty comment table", ErrInvalidTable)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range commentHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidTable, name)
		}
	}
	reader.FieldsPerRecord = len(header)

	var comments []Comment
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		c := Comment{
			VideoID:  rec[col["video_id"]],
			ID:       rec[col["comment_id"]],
			Author:   rec[col["author"]],
			Text:     rec[col["comment"]],
			ParentID: rec[col["parent_id"]],
		}
		if v := rec[col["like_count"]]; v != "" {
			n, err := parseCount(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: like_count %q: %w", line, v, err)
			}
			c.Likes = n
		}
		if v := rec[col["published_at"]]; v != "" {
			c.PublishedAt = parseTime(v)
		}
		if v := rec[col["is_reply"]]; v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: is_reply %q: %w", line, v, err)
			}
			c.IsReply = b
		}
		comments = append(comments, c)
	}

	return comments, nil
}

// createFile creates path and its parent directories.
func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return f, nil
}

// WriteVideosFile writes the video table to path.
func WriteVideosFile(path string, videos []Video) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := WriteVideos(f, videos); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCommentsFile writes a comment table to path.
func WriteCommentsFile(path string, comments []Comment) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := WriteComments(f, comments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCommentsFile reads a comment table from path.
func ReadCommentsFile(path string) ([]Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open comment table: %w", err)
	}
	defer f.Close()
	return ReadComments(f)
}

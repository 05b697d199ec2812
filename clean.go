package ytcomments

// Clean drops every comment whose ID already appeared earlier in the slice,
// then drops all replies. The result is a new slice in input order, so
// running Clean on its own output changes nothing.
func Clean(comments []Comment) ([]Comment, CleanReport) {
	seen := make(map[string]struct{}, len(comments))
	cleaned := make([]Comment, 0, len(comments))

	for _, c := range comments {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		if c.ParentID != "" {
			continue
		}
		cleaned = append(cleaned, c)
	}

	return cleaned, CleanReport{Before: len(comments), After: len(cleaned)}
}

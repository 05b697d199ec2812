package ytcomments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func top(video, id string) Comment {
	return Comment{VideoID: video, ID: id, Text: "top " + id}
}

func reply(video, id, parent string) Comment {
	return Comment{VideoID: video, ID: id, Text: "reply " + id, IsReply: true, ParentID: parent}
}

func commentIDs(cs []Comment) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestClean_DropsRepliesAndDuplicates(t *testing.T) {
	t.Parallel()
	in := []Comment{
		top("v1", "a"),
		reply("v1", "a.1", "a"),
		reply("v1", "a.2", "a"),
		top("v2", "b"),
		top("v2", "a"), // same id seen again
		reply("v2", "b.1", "b"),
		top("v2", "c"),
	}

	out, report := Clean(in)

	assert.Equal(t, []string{"a", "b", "c"}, commentIDs(out))
	assert.Equal(t, CleanReport{Before: 7, After: 3}, report)
	assert.Equal(t, "v1", out[0].VideoID, "first occurrence wins")
}

func TestClean_DuplicateOfReplyIsDropped(t *testing.T) {
	t.Parallel()
	// A reply seen first claims its id; a later top-level row with that id is a duplicate.
	in := []Comment{reply("v1", "x", "p"), top("v1", "x"), top("v1", "y")}

	out, _ := Clean(in)

	assert.Equal(t, []string{"y"}, commentIDs(out))
}

func TestClean_Invariants(t *testing.T) {
	t.Parallel()
	in := []Comment{
		top("v1", "a"), top("v1", "a"), reply("v1", "r", "a"),
		top("v1", "b"), reply("v1", "r", "b"), top("v2", "b"), top("v2", "c"),
	}

	out, _ := Clean(in)

	seen := map[string]bool{}
	for _, c := range out {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.Empty(t, c.ParentID, "reply %s survived cleaning", c.ID)
	}
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()
	in := []Comment{top("v1", "a"), reply("v1", "a.1", "a"), top("v1", "a"), top("v1", "b")}

	once, r1 := Clean(in)
	twice, r2 := Clean(once)

	require.Equal(t, once, twice)
	assert.Equal(t, r1.After, r2.Before)
	assert.Equal(t, r2.Before, r2.After)
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []Comment{top("v1", "a"), reply("v1", "a.1", "a")}
	orig := append([]Comment(nil), in...)

	_, _ = Clean(in)

	assert.Equal(t, orig, in)
}

func TestClean_Empty(t *testing.T) {
	t.Parallel()
	out, report := Clean(nil)
	assert.Empty(t, out)
	assert.Equal(t, CleanReport{}, report)
}

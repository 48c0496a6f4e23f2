package ops

import (
	"testing"

	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/stretchr/testify/require"
)

// TestFullWorkflow exercises the complete message lifecycle:
// send → search → update → print → delete → search (no match)
func TestFullWorkflow(t *testing.T) {
	s, out := newTestSession(t)

	// 1. Send
	sendOut, err := Send(s, SendInput{Text: "hello world"})
	require.NoError(t, err)
	require.NotEmpty(t, sendOut.ID)
	require.Equal(t, "hello world\n", out.String())
	require.Equal(t, []string{"hello world"}, recordContents(s))

	// 2. Search
	searchOut, err := Search(s, SearchInput{Word: "world"})
	require.NoError(t, err)
	require.Equal(t, 1, searchOut.Total)
	require.Equal(t, sendOut.ID, searchOut.Items[0].ID)

	// 3. Update
	updateOut, err := Update(s, UpdateInput{Index: 0, Text: "goodbye"})
	require.NoError(t, err)
	require.Equal(t, sendOut.ID, updateOut.ID)
	require.Equal(t, []string{"goodbye"}, recordContents(s))

	// 4. Print
	out.Reset()
	require.NoError(t, PrintAll(s))
	require.Equal(t, "0: goodbye\n", out.String())

	// 5. Delete
	deleteOut, err := Delete(s, DeleteInput{Index: 0})
	require.NoError(t, err)
	require.True(t, deleteOut.Deleted)
	require.Empty(t, recordContents(s))

	// 6. Search finds nothing, and the index is gone
	searchOut, err = Search(s, SearchInput{Word: "goodbye"})
	require.NoError(t, err)
	require.Zero(t, searchOut.Total)

	_, err = Update(s, UpdateInput{Index: 0, Text: "again"})
	require.True(t, errors.Is(err, errors.ErrIndexOutOfRange))
}

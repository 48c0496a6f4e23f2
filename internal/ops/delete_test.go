package ops

import (
	"strings"
	"testing"

	"github.com/hpungsan/msgpipe/internal/errors"
)

func TestDelete_First(t *testing.T) {
	s, _ := newTestSession(t)
	sendAll(t, s, "A", "B", "C")
	first, _ := s.Processing.At(0)

	output, err := Delete(s, DeleteInput{Index: 0})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if !output.Deleted {
		t.Error("Deleted = false, want true")
	}
	if output.ID != first.ID {
		t.Errorf("ID = %q, want %q", output.ID, first.ID)
	}
	if got := recordContents(s); strings.Join(got, ",") != "B,C" {
		t.Errorf("records = %v, want [B C]", got)
	}
}

func TestDelete_IndexOutOfRange(t *testing.T) {
	s, _ := newTestSession(t)
	sendAll(t, s, "only")

	for _, idx := range []int{-1, 1} {
		_, err := Delete(s, DeleteInput{Index: idx})
		if !errors.Is(err, errors.ErrIndexOutOfRange) {
			t.Errorf("Delete(%d) error = %v, want INDEX_OUT_OF_RANGE", idx, err)
		}
	}
	if s.Processing.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Processing.Len())
	}
}

func TestDelete_Twice(t *testing.T) {
	s, _ := newTestSession(t)
	sendAll(t, s, "x")

	if _, err := Delete(s, DeleteInput{Index: 0}); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}
	_, err := Delete(s, DeleteInput{Index: 0})
	if !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("second Delete error = %v, want INDEX_OUT_OF_RANGE", err)
	}
}

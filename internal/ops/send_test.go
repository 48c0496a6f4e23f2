package ops

import (
	"strings"
	"testing"

	"github.com/hpungsan/msgpipe/internal/errors"
)

func TestSend_RecordsAndPrints(t *testing.T) {
	s, out := newTestSession(t)

	output, err := Send(s, SendInput{Text: "hello world"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if output.ID == "" {
		t.Error("ID should not be empty")
	}
	if output.Index != 0 {
		t.Errorf("Index = %d, want 0", output.Index)
	}
	if output.Content != "hello world" {
		t.Errorf("Content = %q, want %q", output.Content, "hello world")
	}
	if out.String() != "hello world\n" {
		t.Errorf("output = %q, want %q", out.String(), "hello world\n")
	}

	last, err := s.Processing.At(s.Processing.Len() - 1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if last.ID != output.ID {
		t.Errorf("last record ID = %q, want %q", last.ID, output.ID)
	}
}

func TestSend_LeavesPipelineEmpty(t *testing.T) {
	s, _ := newTestSession(t)

	sendAll(t, s, "one", "two", "three")

	if s.Intake.Len() != 0 {
		t.Errorf("queue Len() = %d, want 0", s.Intake.Len())
	}
	if s.Processing.StackLen() != 0 {
		t.Errorf("stack Len() = %d, want 0", s.Processing.StackLen())
	}
	got := recordContents(s)
	if strings.Join(got, ",") != "one,two,three" {
		t.Errorf("records = %v, want [one two three]", got)
	}
}

func TestSend_IndexGrowsByOne(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 3; i++ {
		before := s.Processing.Len()
		output, err := Send(s, SendInput{Text: "msg"})
		if err != nil {
			t.Fatalf("Send failed: %v", err)
		}
		if s.Processing.Len() != before+1 {
			t.Errorf("Len() = %d, want %d", s.Processing.Len(), before+1)
		}
		if output.Index != before {
			t.Errorf("Index = %d, want %d", output.Index, before)
		}
	}
}

func TestSend_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("x", 251)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(t)

			_, err := Send(s, SendInput{Text: tt.text})
			if !errors.Is(err, errors.ErrInvalidArgument) {
				t.Fatalf("Send error = %v, want INVALID_ARGUMENT", err)
			}
			if s.Processing.Len() != 0 {
				t.Errorf("records Len() = %d, want 0", s.Processing.Len())
			}
			if s.Intake.Len() != 0 {
				t.Errorf("queue Len() = %d, want 0", s.Intake.Len())
			}
			if out.Len() != 0 {
				t.Errorf("output = %q, want empty", out.String())
			}
		})
	}
}

func TestSend_MaxLength(t *testing.T) {
	s, _ := newTestSession(t)
	text := strings.Repeat("m", 250)

	output, err := Send(s, SendInput{Text: text})
	if err != nil {
		t.Fatalf("Send(250 chars) failed: %v", err)
	}
	if output.Content != text {
		t.Error("Content should round-trip at max length")
	}
}

package processing

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/hpungsan/msgpipe/internal/message"
)

// Store stages messages on a stack and keeps the ordered list of recorded messages.
// Records are addressed by their current position; Delete shifts later records down.
type Store struct {
	stack    Stack
	records  []*message.Message
	out      io.Writer
	maxChars int
}

// NewStore returns an empty store that prints recorded messages to out.
// maxChars bounds text passed to Update.
func NewStore(out io.Writer, maxChars int) *Store {
	if out == nil {
		out = io.Discard
	}
	return &Store{out: out, maxChars: maxChars}
}

// Push stages m on the stack.
func (s *Store) Push(m *message.Message) error {
	return s.stack.Push(m)
}

// Pop removes and returns the most recently staged message.
func (s *Store) Pop() (*message.Message, error) {
	return s.stack.Pop()
}

// Peek returns the most recently staged message without removing it.
func (s *Store) Peek() (*message.Message, error) {
	return s.stack.Peek()
}

// StackLen returns the number of staged messages.
func (s *Store) StackLen() int {
	return s.stack.Len()
}

// RecordAndPrint writes m's content to the output and appends m to the record list.
func (s *Store) RecordAndPrint(m *message.Message) error {
	if m == nil {
		return errors.NewInvalidArgument("message cannot be nil")
	}
	if _, err := fmt.Fprintln(s.out, m.Content()); err != nil {
		return errors.NewInternal(err)
	}
	s.records = append(s.records, m)
	return nil
}

// Search returns every record whose content contains word, ignoring case, in list order.
// The result is a new slice and never nil.
func (s *Store) Search(word string) ([]*message.Message, error) {
	if word == "" {
		return nil, errors.NewInvalidArgument("word cannot be empty")
	}
	needle := strings.ToLower(word)
	return lo.Filter(s.records, func(m *message.Message, _ int) bool {
		return strings.Contains(strings.ToLower(m.Content()), needle)
	}), nil
}

// Update replaces the content of the record at index. The index is checked before the text.
func (s *Store) Update(index int, text string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := message.Validate(text, s.maxChars); err != nil {
		return err
	}
	s.records[index].SetContent(text)
	return nil
}

// Delete removes the record at index and returns it.
func (s *Store) Delete(index int) (*message.Message, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	removed := s.records[index]
	copy(s.records[index:], s.records[index+1:])
	s.records[len(s.records)-1] = nil
	s.records = s.records[:len(s.records)-1]
	return removed, nil
}

// PrintAll writes "<index>: <content>" for every record in list order.
func (s *Store) PrintAll() error {
	for i, m := range s.records {
		if _, err := fmt.Fprintf(s.out, "%d: %s\n", i, m); err != nil {
			return errors.NewInternal(err)
		}
	}
	return nil
}

// At returns the record at index.
func (s *Store) At(index int) (*message.Message, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.records[index], nil
}

// Records returns a copy of the record list.
func (s *Store) Records() []*message.Message {
	out := make([]*message.Message, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.records) {
		return errors.NewIndexOutOfRange(index, len(s.records))
	}
	return nil
}

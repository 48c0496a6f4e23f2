// Package processing holds the staging stack and the record list of sent messages.
package processing

import (
	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/hpungsan/msgpipe/internal/message"
)

// Stack is a LIFO of messages waiting to be recorded.
type Stack struct {
	items []*message.Message
}

// Push places m on top.
func (s *Stack) Push(m *message.Message) error {
	if m == nil {
		return errors.NewInvalidArgument("message cannot be nil")
	}
	s.items = append(s.items, m)
	return nil
}

// Pop removes and returns the top message.
func (s *Stack) Pop() (*message.Message, error) {
	n := len(s.items)
	if n == 0 {
		return nil, errors.NewEmptyCollection("stack")
	}
	top := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return top, nil
}

// Peek returns the top message without removing it.
func (s *Stack) Peek() (*message.Message, error) {
	if len(s.items) == 0 {
		return nil, errors.NewEmptyCollection("stack")
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of staged messages.
func (s *Stack) Len() int {
	return len(s.items)
}

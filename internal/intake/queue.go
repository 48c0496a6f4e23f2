// Package intake admits validated messages into a FIFO queue ahead of processing.
package intake

import (
	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/hpungsan/msgpipe/internal/message"
)

// Queue is an unbounded FIFO of messages.
type Queue struct {
	items    []*message.Message
	maxChars int
}

// NewQueue returns an empty queue whose CreateMessage enforces maxChars.
func NewQueue(maxChars int) *Queue {
	return &Queue{maxChars: maxChars}
}

// CreateMessage validates text and builds a message. It does not enqueue it.
func (q *Queue) CreateMessage(text string) (*message.Message, error) {
	return message.New(text, q.maxChars)
}

// Enqueue appends m at the tail.
func (q *Queue) Enqueue(m *message.Message) error {
	if m == nil {
		return errors.NewInvalidArgument("message cannot be nil")
	}
	q.items = append(q.items, m)
	return nil
}

// Dequeue removes and returns the head.
func (q *Queue) Dequeue() (*message.Message, error) {
	if len(q.items) == 0 {
		return nil, errors.NewEmptyCollection("queue")
	}
	head := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return head, nil
}

// Peek returns the head without removing it.
func (q *Queue) Peek() (*message.Message, error) {
	if len(q.items) == 0 {
		return nil, errors.NewEmptyCollection("queue")
	}
	return q.items[0], nil
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	return len(q.items)
}

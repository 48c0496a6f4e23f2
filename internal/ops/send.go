package ops

import (
	"github.com/hpungsan/msgpipe/internal/message"
)

// SendInput contains parameters for the Send operation.
type SendInput struct {
	Text string // required, 1..MaxChars runes
}

// SendOutput contains the result of the Send operation.
type SendOutput struct {
	ID      string
	Index   int // position in the record list right after recording
	Content string
}

// Send creates a message and moves it through the whole pipeline:
// intake queue, staging stack, then the record list (printing it on the way).
func Send(s *Session, input SendInput) (*SendOutput, error) {
	m, err := s.Intake.CreateMessage(input.Text)
	if err != nil {
		s.log.Debug("message rejected", "stage", "create", "chars", message.CountChars(input.Text), "error", err)
		return nil, err
	}

	if err := s.Intake.Enqueue(m); err != nil {
		return nil, err
	}
	queued, err := s.Intake.Dequeue()
	if err != nil {
		return nil, err
	}

	// The stack holds the message only until the pop below.
	if err := s.Processing.Push(queued); err != nil {
		return nil, err
	}
	staged, err := s.Processing.Pop()
	if err != nil {
		return nil, err
	}

	if err := s.Processing.RecordAndPrint(staged); err != nil {
		s.log.Error("record failed", "id", staged.ID, "error", err)
		return nil, err
	}

	index := s.Processing.Len() - 1
	s.log.Debug("message sent", "id", staged.ID, "index", index, "chars", message.CountChars(staged.Content()))

	return &SendOutput{
		ID:      staged.ID,
		Index:   index,
		Content: staged.Content(),
	}, nil
}

// Package message defines the text message that flows through the intake
// queue, the processing stack and the record list.
package message

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/msgpipe/internal/errors"
)

// DefaultMaxChars is the message length limit used when none is given.
const DefaultMaxChars = 250

// Message is a single piece of user text. Content changes only through SetContent.
type Message struct {
	// ID is a ULID assigned at creation; it survives content updates
	ID string

	// CreatedAt is the Unix timestamp when the message was created
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last content change
	UpdatedAt int64

	content string
}

// New validates text against maxChars and creates a message.
// maxChars <= 0 means DefaultMaxChars.
func New(text string, maxChars int) (*Message, error) {
	if err := Validate(text, maxChars); err != nil {
		return nil, err
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now().Unix()
	return &Message{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		content:   text,
	}, nil
}

// Content returns the current text.
func (m *Message) Content() string {
	return m.content
}

// SetContent replaces the text without validating it. Callers check with Validate first.
func (m *Message) SetContent(text string) {
	m.content = text
	m.UpdatedAt = time.Now().Unix()
}

// String returns the content verbatim.
func (m *Message) String() string {
	return m.content
}

func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
